package service

import "careerquest/internal/domain"

// TraitProfileFor devuelve el perfil descriptivo del rasgo. Si el rasgo es
// desconocido cae en Analytical, igual que el resto del flujo de resultados.
func TraitProfileFor(trait string) domain.TraitProfile {
	if p, ok := traitProfiles[trait]; ok {
		return p
	}
	return traitProfiles[domain.TraitAnalytical]
}

var traitProfiles = map[string]domain.TraitProfile{
	domain.TraitLeadership: {
		Trait:       domain.TraitLeadership,
		Description: "You are a natural leader with exceptional organizational and motivational abilities.",
		Strengths:   []string{"Decision making", "Team management", "Strategic thinking", "Inspiring others"},
		Weaknesses:  []string{"Delegation anxiety", "Impatience with slow progress", "Overcommitment"},
		Careers:     []string{"IAS Officer", "Business Manager", "Entrepreneur", "HR Director", "School Principal"},
	},
	domain.TraitCommunication: {
		Trait:       domain.TraitCommunication,
		Description: "You excel at expressing ideas and connecting with people through effective communication.",
		Strengths:   []string{"Public speaking", "Negotiation", "Building relationships", "Persuasion"},
		Weaknesses:  []string{"Over-explaining", "Difficulty with technical tasks", "Sensitivity to criticism"},
		Careers:     []string{"Journalist", "Public Relations Manager", "Lawyer", "Marketing Executive", "News Anchor"},
	},
	domain.TraitAnalytical: {
		Trait:       domain.TraitAnalytical,
		Description: "You have a sharp analytical mind with excellent problem-solving capabilities.",
		Strengths:   []string{"Critical thinking", "Data analysis", "Attention to detail", "Logical reasoning"},
		Weaknesses:  []string{"Analysis paralysis", "Difficulty with ambiguity", "Overthinking"},
		Careers:     []string{"Data Scientist", "Research Scientist", "Financial Analyst", "Doctor", "Chartered Accountant"},
	},
	domain.TraitProblemSolving: {
		Trait:       domain.TraitProblemSolving,
		Description: "You thrive on challenges and excel at finding innovative solutions to complex problems.",
		Strengths:   []string{"Root cause analysis", "Creative problem-solving", "Persistence", "Adaptability"},
		Weaknesses:  []string{"Perfectionism", "Impatience with simple tasks", "Risk-taking"},
		Careers:     []string{"Consultant", "Systems Analyst", "Detective", "Surgeon", "Engineer"},
	},
	domain.TraitCreativity: {
		Trait:       domain.TraitCreativity,
		Description: "You possess exceptional creativity and imagination with a unique perspective on the world.",
		Strengths:   []string{"Innovation", "Visual thinking", "Original ideas", "Artistic expression"},
		Weaknesses:  []string{"Difficulty with routine", "Sensitivity to criticism", "Procrastination"},
		Careers:     []string{"Graphic Designer", "Film Director", "Architect", "Fashion Designer", "Content Creator"},
	},
	domain.TraitTechnical: {
		Trait:       domain.TraitTechnical,
		Description: "You have strong technical aptitude and enjoy working with systems and technology.",
		Strengths:   []string{"Technical expertise", "Precision", "Systematic approach", "Continuous learning"},
		Weaknesses:  []string{"Difficulty with social tasks", "Resistance to non-technical work", "Perfectionism"},
		Careers:     []string{"Software Engineer", "Mechanical Engineer", "Robotics Engineer", "Pilot", "Electrician"},
	},
	domain.TraitHelping: {
		Trait:       domain.TraitHelping,
		Description: "You are compassionate and find fulfillment in supporting and helping others.",
		Strengths:   []string{"Empathy", "Patience", "Active listening", "Emotional intelligence"},
		Weaknesses:  []string{"Emotional burnout", "Difficulty saying no", "Over-involvement"},
		Careers:     []string{"Doctor", "Nurse", "Counselor", "Social Worker", "Teacher"},
	},
	domain.TraitSocial: {
		Trait:       domain.TraitSocial,
		Description: "You thrive in social environments and excel at building relationships and teamwork.",
		Strengths:   []string{"Teamwork", "Networking", "Cultural awareness", "Collaboration"},
		Weaknesses:  []string{"Dependency on others", "Conflict avoidance", "Difficulty working alone"},
		Careers:     []string{"Event Manager", "HR Professional", "Diplomat", "Sales Manager", "Community Organizer"},
	},
}
