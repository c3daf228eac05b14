package domain

import "time"

// TraitProfile es el contenido descriptivo estatico de un rasgo.
type TraitProfile struct {
	Trait       string   `json:"trait"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Careers     []string `json:"careers"`
}

// Avatar es el emoji y gradiente asociados a una profesion.
type Avatar struct {
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// CareerReport es el reporte final que combina el resultado del cuestionario
// con el contenido estatico de la profesion elegida.
type CareerReport struct {
	Name      string       `json:"name"`
	Age       string       `json:"age"`
	Aim       string       `json:"aim"`
	Result    ScoredResult `json:"result"`
	Profile   TraitProfile `json:"profile"`
	Avatar    Avatar       `json:"avatar"`
	ImagePath string       `json:"image_path"`
	Roadmap   []string     `json:"roadmap"`
	Quote     string       `json:"quote"`
}

// AssessmentRecord es la fila persistida de un resultado.
type AssessmentRecord struct {
	ID                string         `json:"id"`
	FlowID            string         `json:"flow_id"`
	Name              string         `json:"name"`
	Aim               string         `json:"aim"`
	DominantTrait     string         `json:"dominant_trait"`
	OverallPercentage int            `json:"overall_percentage"`
	TraitAverages     map[string]int `json:"trait_averages"`
	CreatedAt         time.Time      `json:"created_at"`
}
