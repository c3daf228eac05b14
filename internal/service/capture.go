package service

import (
	"errors"
	"regexp"
	"strings"
)

var ErrUtteranceUnparsed = errors.New("could not parse name and profession from utterance")

// CapturedIdentity es el par nombre/profesion extraido de una frase dictada.
type CapturedIdentity struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
}

// utterancePatterns se prueba en orden; gana el primer patron que matchea.
// Cada patron captura (nombre, profesion).
var utterancePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)my name is (.+?) and (?:i am|i'm) (?:a |an )?(.+)`),
	regexp.MustCompile(`(?i)(?:i am|i'm) (.+?) and (?:i am|i'm) (?:a |an )?(.+)`),
	regexp.MustCompile(`(?i)(.+?) and (?:i am|i'm) (?:a |an )?(.+)`),
	regexp.MustCompile(`(?i)(.+?),\s*(?:a |an )?(.+)`),
}

// ParseUtterance extrae nombre y profesion de frases como "My name is Priya
// and I am a doctor" o "Rahul, engineer". Devuelve ErrUtteranceUnparsed si
// ningun patron conocido matchea.
func ParseUtterance(utterance string) (CapturedIdentity, error) {
	text := strings.TrimSpace(utterance)
	text = strings.TrimSuffix(text, ".")
	if text == "" {
		return CapturedIdentity{}, ErrUtteranceUnparsed
	}
	for _, pattern := range utterancePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		identity := CapturedIdentity{
			Name:       strings.TrimSpace(m[1]),
			Profession: strings.TrimSpace(m[2]),
		}
		if identity.Name == "" || identity.Profession == "" {
			continue
		}
		return identity, nil
	}
	return CapturedIdentity{}, ErrUtteranceUnparsed
}
