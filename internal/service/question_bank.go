package service

import "careerquest/internal/domain"

// QuestionBank devuelve el banco completo de 100 afirmaciones. Es estatico y
// se define al arrancar el proceso; cada afirmacion mide uno de los 8 rasgos.
func QuestionBank() []domain.Question {
	return questionBank
}

var questionBank = []domain.Question{
	// Leadership & Communication (1-20)
	{ID: 1, Text: "I enjoy taking charge in group situations", Trait: domain.TraitLeadership},
	{ID: 2, Text: "I find it easy to motivate and inspire others", Trait: domain.TraitLeadership},
	{ID: 3, Text: "I prefer making decisions rather than following others", Trait: domain.TraitLeadership},
	{ID: 4, Text: "I am comfortable speaking in front of large groups", Trait: domain.TraitCommunication},
	{ID: 5, Text: "I express my ideas clearly and confidently", Trait: domain.TraitCommunication},
	{ID: 6, Text: "I enjoy debating and discussing different viewpoints", Trait: domain.TraitCommunication},
	{ID: 7, Text: "I am good at resolving conflicts between people", Trait: domain.TraitLeadership},
	{ID: 8, Text: "I naturally take initiative in new situations", Trait: domain.TraitLeadership},
	{ID: 9, Text: "People often come to me for advice", Trait: domain.TraitLeadership},
	{ID: 10, Text: "I enjoy organizing events and activities", Trait: domain.TraitLeadership},
	{ID: 11, Text: "I am comfortable delegating tasks to others", Trait: domain.TraitLeadership},
	{ID: 12, Text: "I listen carefully to understand others' perspectives", Trait: domain.TraitCommunication},
	{ID: 13, Text: "I adapt my communication style for different audiences", Trait: domain.TraitCommunication},
	{ID: 14, Text: "I am good at persuading others to see my point of view", Trait: domain.TraitCommunication},
	{ID: 15, Text: "I stay calm under pressure and guide others through challenges", Trait: domain.TraitLeadership},
	{ID: 16, Text: "I enjoy mentoring and teaching others", Trait: domain.TraitLeadership},
	{ID: 17, Text: "I am comfortable giving constructive feedback", Trait: domain.TraitCommunication},
	{ID: 18, Text: "I build strong relationships with people quickly", Trait: domain.TraitCommunication},
	{ID: 19, Text: "I am diplomatic when dealing with sensitive situations", Trait: domain.TraitCommunication},
	{ID: 20, Text: "I enjoy networking and meeting new people", Trait: domain.TraitCommunication},

	// Analytical & Problem-Solving (21-40)
	{ID: 21, Text: "I enjoy solving complex puzzles and problems", Trait: domain.TraitAnalytical},
	{ID: 22, Text: "I prefer to analyze data before making decisions", Trait: domain.TraitAnalytical},
	{ID: 23, Text: "I am detail-oriented and notice small inconsistencies", Trait: domain.TraitAnalytical},
	{ID: 24, Text: "I enjoy working with numbers and statistics", Trait: domain.TraitAnalytical},
	{ID: 25, Text: "I break down complex problems into smaller parts", Trait: domain.TraitProblemSolving},
	{ID: 26, Text: "I enjoy finding patterns in data and information", Trait: domain.TraitAnalytical},
	{ID: 27, Text: "I think logically and systematically", Trait: domain.TraitAnalytical},
	{ID: 28, Text: "I enjoy conducting research and gathering information", Trait: domain.TraitAnalytical},
	{ID: 29, Text: "I am good at identifying the root cause of problems", Trait: domain.TraitProblemSolving},
	{ID: 30, Text: "I enjoy strategic planning and forecasting", Trait: domain.TraitAnalytical},
	{ID: 31, Text: "I am comfortable working with complex systems", Trait: domain.TraitTechnical},
	{ID: 32, Text: "I enjoy optimizing processes for better efficiency", Trait: domain.TraitProblemSolving},
	{ID: 33, Text: "I question assumptions and seek evidence", Trait: domain.TraitAnalytical},
	{ID: 34, Text: "I am patient when working through difficult challenges", Trait: domain.TraitProblemSolving},
	{ID: 35, Text: "I enjoy debugging and troubleshooting issues", Trait: domain.TraitTechnical},
	{ID: 36, Text: "I create structured approaches to solve problems", Trait: domain.TraitProblemSolving},
	{ID: 37, Text: "I am good at evaluating risks and trade-offs", Trait: domain.TraitAnalytical},
	{ID: 38, Text: "I enjoy learning about scientific concepts", Trait: domain.TraitAnalytical},
	{ID: 39, Text: "I think critically and question information", Trait: domain.TraitAnalytical},
	{ID: 40, Text: "I am thorough in my work and check for errors", Trait: domain.TraitProblemSolving},

	// Creativity & Innovation (41-60)
	{ID: 41, Text: "I enjoy coming up with new and original ideas", Trait: domain.TraitCreativity},
	{ID: 42, Text: "I think outside the box to find unique solutions", Trait: domain.TraitCreativity},
	{ID: 43, Text: "I am drawn to artistic and creative activities", Trait: domain.TraitCreativity},
	{ID: 44, Text: "I enjoy expressing myself through art, music, or writing", Trait: domain.TraitCreativity},
	{ID: 45, Text: "I often daydream and imagine new possibilities", Trait: domain.TraitCreativity},
	{ID: 46, Text: "I appreciate beauty and aesthetics in design", Trait: domain.TraitCreativity},
	{ID: 47, Text: "I am good at visualizing concepts and ideas", Trait: domain.TraitCreativity},
	{ID: 48, Text: "I enjoy brainstorming and generating multiple ideas", Trait: domain.TraitCreativity},
	{ID: 49, Text: "I am open to trying unconventional approaches", Trait: domain.TraitCreativity},
	{ID: 50, Text: "I find inspiration in everyday experiences", Trait: domain.TraitCreativity},
	{ID: 51, Text: "I enjoy improvising and adapting on the fly", Trait: domain.TraitCreativity},
	{ID: 52, Text: "I am comfortable with ambiguity and uncertainty", Trait: domain.TraitCreativity},
	{ID: 53, Text: "I enjoy creating stories or narratives", Trait: domain.TraitCreativity},
	{ID: 54, Text: "I appreciate different forms of creative expression", Trait: domain.TraitCreativity},
	{ID: 55, Text: "I enjoy designing and creating visual content", Trait: domain.TraitCreativity},
	{ID: 56, Text: "I am curious and love exploring new ideas", Trait: domain.TraitCreativity},
	{ID: 57, Text: "I enjoy innovating and improving existing things", Trait: domain.TraitCreativity},
	{ID: 58, Text: "I see problems as opportunities for creative solutions", Trait: domain.TraitCreativity},
	{ID: 59, Text: "I am passionate about learning new creative skills", Trait: domain.TraitCreativity},
	{ID: 60, Text: "I enjoy combining different ideas to create something new", Trait: domain.TraitCreativity},

	// Technical & Practical (61-80)
	{ID: 61, Text: "I enjoy working with technology and gadgets", Trait: domain.TraitTechnical},
	{ID: 62, Text: "I am comfortable learning new software and tools", Trait: domain.TraitTechnical},
	{ID: 63, Text: "I enjoy building and constructing things", Trait: domain.TraitTechnical},
	{ID: 64, Text: "I am good at understanding how things work mechanically", Trait: domain.TraitTechnical},
	{ID: 65, Text: "I enjoy programming and coding", Trait: domain.TraitTechnical},
	{ID: 66, Text: "I prefer hands-on work over theoretical discussions", Trait: domain.TraitTechnical},
	{ID: 67, Text: "I am good at fixing and repairing things", Trait: domain.TraitTechnical},
	{ID: 68, Text: "I enjoy working with precision and accuracy", Trait: domain.TraitTechnical},
	{ID: 69, Text: "I am comfortable with technical documentation", Trait: domain.TraitTechnical},
	{ID: 70, Text: "I enjoy experimenting with new technologies", Trait: domain.TraitTechnical},
	{ID: 71, Text: "I am good at following technical instructions", Trait: domain.TraitTechnical},
	{ID: 72, Text: "I enjoy working in structured environments", Trait: domain.TraitTechnical},
	{ID: 73, Text: "I am patient when learning complex technical skills", Trait: domain.TraitTechnical},
	{ID: 74, Text: "I enjoy automating repetitive tasks", Trait: domain.TraitTechnical},
	{ID: 75, Text: "I am good at maintaining and organizing systems", Trait: domain.TraitTechnical},
	{ID: 76, Text: "I enjoy working with data and databases", Trait: domain.TraitTechnical},
	{ID: 77, Text: "I am comfortable troubleshooting technical issues", Trait: domain.TraitTechnical},
	{ID: 78, Text: "I enjoy learning about engineering concepts", Trait: domain.TraitTechnical},
	{ID: 79, Text: "I am detail-oriented in technical work", Trait: domain.TraitTechnical},
	{ID: 80, Text: "I prefer systematic approaches over intuition", Trait: domain.TraitTechnical},

	// Social & Helping (81-100)
	{ID: 81, Text: "I enjoy helping others solve their problems", Trait: domain.TraitHelping},
	{ID: 82, Text: "I am empathetic and understand others' feelings", Trait: domain.TraitHelping},
	{ID: 83, Text: "I find fulfillment in making a positive difference", Trait: domain.TraitHelping},
	{ID: 84, Text: "I enjoy working with people from diverse backgrounds", Trait: domain.TraitSocial},
	{ID: 85, Text: "I am patient and supportive with others", Trait: domain.TraitHelping},
	{ID: 86, Text: "I enjoy volunteering and community service", Trait: domain.TraitHelping},
	{ID: 87, Text: "I am a good listener and give emotional support", Trait: domain.TraitHelping},
	{ID: 88, Text: "I enjoy working in healthcare or caregiving roles", Trait: domain.TraitHelping},
	{ID: 89, Text: "I am comfortable in emotionally challenging situations", Trait: domain.TraitHelping},
	{ID: 90, Text: "I enjoy counseling and guiding others", Trait: domain.TraitHelping},
	{ID: 91, Text: "I am passionate about social causes and justice", Trait: domain.TraitSocial},
	{ID: 92, Text: "I enjoy collaborating and working in teams", Trait: domain.TraitSocial},
	{ID: 93, Text: "I value building strong relationships over tasks", Trait: domain.TraitSocial},
	{ID: 94, Text: "I am good at reading social cues and body language", Trait: domain.TraitSocial},
	{ID: 95, Text: "I enjoy mediating and bringing people together", Trait: domain.TraitSocial},
	{ID: 96, Text: "I am comfortable in service-oriented roles", Trait: domain.TraitHelping},
	{ID: 97, Text: "I prioritize others' wellbeing over personal gain", Trait: domain.TraitHelping},
	{ID: 98, Text: "I enjoy teaching and sharing knowledge", Trait: domain.TraitSocial},
	{ID: 99, Text: "I am passionate about education and learning", Trait: domain.TraitSocial},
	{ID: 100, Text: "I find meaning in contributing to society", Trait: domain.TraitSocial},
}
