package service

import (
	"math/rand/v2"
	"strings"

	"careerquest/internal/domain"
)

// Classify busca la primera entrada de la tabla de profesiones cuya palabra
// clave aparezca como substring del texto normalizado. Politica lineal de
// primera coincidencia, no de mejor coincidencia: si el texto contiene dos
// palabras clave gana la entrada declarada antes. Sin coincidencia devuelve
// la entrada por defecto.
func Classify(freeText string) ProfessionGroup {
	normalized := strings.ToLower(freeText)
	for _, group := range professionGroups {
		for _, keyword := range group.Keywords {
			if strings.Contains(normalized, keyword) {
				return group
			}
		}
	}
	return defaultProfessionGroup
}

// RoadmapFor devuelve la hoja de ruta de la profesion; grupos sin hoja propia
// usan la generica.
func RoadmapFor(aim string) []string {
	group := Classify(aim)
	if len(group.Roadmap) == 0 {
		return defaultProfessionGroup.Roadmap
	}
	return group.Roadmap
}

// QuoteFor elige una cita motivacional al azar dentro del grupo que coincide;
// grupos sin citas propias usan las genericas.
func QuoteFor(aim string) string {
	group := Classify(aim)
	quotes := group.Quotes
	if len(quotes) == 0 {
		quotes = defaultProfessionGroup.Quotes
	}
	return quotes[rand.IntN(len(quotes))]
}

// BuildReport arma el reporte final combinando el resultado del cuestionario
// con el contenido estatico del rasgo dominante y de la profesion elegida.
func BuildReport(user domain.FlowUserData, result domain.ScoredResult) domain.CareerReport {
	group := Classify(user.Aim)
	roadmap := group.Roadmap
	if len(roadmap) == 0 {
		roadmap = defaultProfessionGroup.Roadmap
	}
	return domain.CareerReport{
		Name:      user.Name,
		Age:       user.Age,
		Aim:       user.Aim,
		Result:    result,
		Profile:   TraitProfileFor(result.DominantTrait),
		Avatar:    group.Avatar,
		ImagePath: group.Image,
		Roadmap:   roadmap,
		Quote:     QuoteFor(user.Aim),
	}
}
