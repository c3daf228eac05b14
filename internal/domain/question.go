package domain

// Los 8 rasgos profesionales que mide el cuestionario.
const (
	TraitLeadership     = "Leadership"
	TraitCommunication  = "Communication"
	TraitAnalytical     = "Analytical"
	TraitProblemSolving = "Problem-Solving"
	TraitCreativity     = "Creativity"
	TraitTechnical      = "Technical"
	TraitHelping        = "Helping"
	TraitSocial         = "Social"
)

// TraitOrder es el orden canonico de rasgos. Los empates en el ranking
// se resuelven por este orden.
var TraitOrder = []string{
	TraitLeadership,
	TraitCommunication,
	TraitAnalytical,
	TraitProblemSolving,
	TraitCreativity,
	TraitTechnical,
	TraitHelping,
	TraitSocial,
}

// TraitRank devuelve la posicion del rasgo en TraitOrder, o len(TraitOrder)
// para rasgos desconocidos.
func TraitRank(trait string) int {
	for i, t := range TraitOrder {
		if t == trait {
			return i
		}
	}
	return len(TraitOrder)
}

// Question es una afirmacion del banco de 100 preguntas. Inmutable.
type Question struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Trait string `json:"trait"`
}
