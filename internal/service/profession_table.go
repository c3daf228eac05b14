package service

import "careerquest/internal/domain"

// ProfessionGroup es una entrada de la tabla de profesiones: palabras clave y
// todo el contenido asociado (avatar, imagen, hoja de ruta, citas). Una sola
// tabla alimenta avatar, imagen, roadmap y cita, evaluada primera-coincidencia
// en el orden declarado.
type ProfessionGroup struct {
	Tag      string
	Keywords []string
	Avatar   domain.Avatar
	Image    string
	Roadmap  []string
	Quotes   []string
}

// professionGroups se evalua en orden; el orden de declaracion es la politica
// de precedencia. "civil-service" va antes de "police" para que "ias" reciba
// la hoja de ruta de UPSC.
var professionGroups = []ProfessionGroup{
	{
		Tag:      "pilot",
		Keywords: []string{"pilot", "aviation"},
		Avatar:   domain.Avatar{Emoji: "✈️", Color: "from-blue-500 to-cyan-400"},
		Image:    "/profession-images/pilot.png",
		Roadmap: []string{
			"Complete 10+2 with Physics and Mathematics",
			"Pass medical fitness test (Class 1 Medical)",
			"Enroll in DGCA approved flying school",
			"Obtain Commercial Pilot License (CPL)",
			"Build flying hours and apply to airlines",
		},
		Quotes: []string{
			"Once you have tasted flight, you will forever walk the earth with your eyes turned skyward. - Leonardo da Vinci",
			"The engine is the heart of an airplane, but the pilot is its soul. - Walter Raleigh",
			"Aviation is proof that given the will, we have the capacity to achieve the impossible. - Eddie Rickenbacker",
		},
	},
	{
		Tag:      "doctor",
		Keywords: []string{"doctor", "medical", "surgeon"},
		Avatar:   domain.Avatar{Emoji: "🩺", Color: "from-red-500 to-pink-400"},
		Image:    "/profession-images/doctor.png",
		Roadmap: []string{
			"Complete 10+2 with Physics, Chemistry, Biology",
			"Prepare for and clear NEET examination",
			"Complete MBBS (5.5 years including internship)",
			"Choose specialization and pursue MD/MS",
			"Register with Medical Council of India",
		},
		Quotes: []string{
			"The good physician treats the disease; the great physician treats the patient who has the disease. - William Osler",
			"Wherever the art of medicine is loved, there is also a love of humanity. - Hippocrates",
			"Medicine is a science of uncertainty and an art of probability. - William Osler",
		},
	},
	{
		Tag:      "engineer",
		Keywords: []string{"engineer", "engineering"},
		Avatar:   domain.Avatar{Emoji: "⚙️", Color: "from-orange-500 to-yellow-400"},
		Image:    "/profession-images/engineer.png",
		Roadmap: []string{
			"Complete 10+2 with Physics, Chemistry, Mathematics",
			"Prepare for JEE Main/Advanced or state engineering exams",
			"Complete B.Tech/B.E. in your chosen branch",
			"Gain practical experience through internships",
			"Consider M.Tech or professional certifications",
		},
		Quotes: []string{
			"Scientists study the world as it is; engineers create the world that has never been. - Theodore von Kármán",
			"Engineering is not only study of 45 subjects but it is moral studies of intellectual life. - Prakhar Srivastav",
			"The engineer has been, and is, a maker of history. - James Kip Finch",
		},
	},
	{
		Tag:      "teacher",
		Keywords: []string{"teacher", "professor", "educator"},
		Avatar:   domain.Avatar{Emoji: "📚", Color: "from-green-500 to-emerald-400"},
		Image:    "/profession-images/teacher.png",
		Roadmap: []string{
			"Complete graduation in your subject area",
			"Pursue B.Ed or M.Ed for teaching certification",
			"Clear CTET/TET for school teaching",
			"For college teaching, complete PhD and clear NET/SET",
			"Gain experience and develop teaching portfolio",
		},
		Quotes: []string{
			"A teacher affects eternity; he can never tell where his influence stops. - Henry Adams",
			"The art of teaching is the art of assisting discovery. - Mark Van Doren",
			"Education is not the filling of a pail, but the lighting of a fire. - William Butler Yeats",
		},
	},
	{
		Tag:      "lawyer",
		Keywords: []string{"lawyer", "advocate", "judge"},
		Avatar:   domain.Avatar{Emoji: "⚖️", Color: "from-purple-500 to-violet-400"},
		Image:    "/profession-images/lawyer.png",
		Roadmap: []string{
			"Complete 10+2 in any stream",
			"Prepare for CLAT or other law entrance exams",
			"Complete LLB degree (3 or 5 years)",
			"Clear All India Bar Examination",
			"Register with Bar Council and start practice",
		},
		Quotes: []string{
			"The good lawyer is not the man who has an eye to every side and angle of contingency. - Edmund Burke",
			"Justice delayed is justice denied. - William E. Gladstone",
			"A lawyer's time and advice are his stock in trade. - Abraham Lincoln",
		},
	},
	{
		Tag:      "scientist",
		Keywords: []string{"scientist", "researcher"},
		Avatar:   domain.Avatar{Emoji: "🔬", Color: "from-indigo-500 to-blue-400"},
		Image:    "/profession-images/scientist.png",
		Quotes: []string{
			"Research is what I'm doing when I don't know what I'm doing. - Wernher von Braun",
			"The important thing is not to stop questioning. Curiosity has its own reason for existing. - Albert Einstein",
			"Science is a way of thinking much more than it is a body of knowledge. - Carl Sagan",
		},
	},
	{
		Tag:      "artist",
		Keywords: []string{"artist", "designer", "creative"},
		Avatar:   domain.Avatar{Emoji: "🎨", Color: "from-pink-500 to-rose-400"},
		Image:    "/profession-images/artist.png",
	},
	{
		Tag:      "business",
		Keywords: []string{"business", "entrepreneur", "ceo"},
		Avatar:   domain.Avatar{Emoji: "💼", Color: "from-amber-500 to-orange-400"},
		Image:    "/profession-images/business.png",
	},
	{
		Tag:      "civil-service",
		Keywords: []string{"ias", "civil service"},
		Avatar:   domain.Avatar{Emoji: "🛡️", Color: "from-slate-500 to-gray-400"},
		Image:    "/profession-images/police.png",
		Roadmap: []string{
			"Complete graduation in any discipline",
			"Start preparation from final year of graduation",
			"Clear UPSC Prelims examination",
			"Clear UPSC Mains examination",
			"Pass the Interview/Personality Test",
		},
	},
	{
		Tag:      "police",
		Keywords: []string{"police", "ips"},
		Avatar:   domain.Avatar{Emoji: "🛡️", Color: "from-slate-500 to-gray-400"},
		Image:    "/profession-images/police.png",
	},
	{
		Tag:      "chef",
		Keywords: []string{"chef", "cook"},
		Avatar:   domain.Avatar{Emoji: "👨‍🍳", Color: "from-red-500 to-orange-400"},
		Image:    "/profession-images/default.png",
	},
	{
		Tag:      "athlete",
		Keywords: []string{"athlete", "sport", "player"},
		Avatar:   domain.Avatar{Emoji: "🏆", Color: "from-yellow-500 to-amber-400"},
		Image:    "/profession-images/default.png",
	},
	{
		Tag:      "astronaut",
		Keywords: []string{"astronaut", "space"},
		Avatar:   domain.Avatar{Emoji: "🚀", Color: "from-violet-500 to-purple-400"},
		Image:    "/profession-images/default.png",
	},
	{
		Tag:      "army",
		Keywords: []string{"army", "military", "soldier"},
		Avatar:   domain.Avatar{Emoji: "🎖️", Color: "from-green-600 to-emerald-500"},
		Image:    "/profession-images/default.png",
	},
	{
		Tag:      "nurse",
		Keywords: []string{"nurse", "healthcare"},
		Avatar:   domain.Avatar{Emoji: "💉", Color: "from-teal-500 to-cyan-400"},
		Image:    "/profession-images/default.png",
	},
	{
		Tag:      "architect",
		Keywords: []string{"architect"},
		Avatar:   domain.Avatar{Emoji: "🏛️", Color: "from-stone-500 to-zinc-400"},
		Image:    "/profession-images/default.png",
	},
	{
		Tag:      "musician",
		Keywords: []string{"musician", "singer", "music"},
		Avatar:   domain.Avatar{Emoji: "🎵", Color: "from-fuchsia-500 to-pink-400"},
		Image:    "/profession-images/default.png",
	},
	{
		Tag:      "actor",
		Keywords: []string{"actor", "actress", "film"},
		Avatar:   domain.Avatar{Emoji: "🎬", Color: "from-red-600 to-rose-500"},
		Image:    "/profession-images/default.png",
	},
	{
		Tag:      "journalist",
		Keywords: []string{"journalist", "writer", "author"},
		Avatar:   domain.Avatar{Emoji: "✍️", Color: "from-cyan-500 to-teal-400"},
		Image:    "/profession-images/default.png",
	},
	{
		Tag:      "programmer",
		Keywords: []string{"programmer", "developer", "software", "coder"},
		Avatar:   domain.Avatar{Emoji: "💻", Color: "from-emerald-500 to-green-400"},
		Image:    "/profession-images/programmer.png",
	},
	{
		Tag:      "accountant",
		Keywords: []string{"accountant", "chartered", "finance"},
		Avatar:   domain.Avatar{Emoji: "📊", Color: "from-blue-600 to-indigo-500"},
		Image:    "/profession-images/default.png",
	},
}

// defaultProfessionGroup se usa cuando ninguna palabra clave coincide.
var defaultProfessionGroup = ProfessionGroup{
	Tag:    "default",
	Avatar: domain.Avatar{Emoji: "⭐", Color: "from-primary to-secondary"},
	Image:  "/profession-images/default.png",
	Roadmap: []string{
		"Research and understand your chosen career path",
		"Identify required qualifications and skills",
		"Pursue relevant education and certifications",
		"Gain practical experience through internships",
		"Build network and continuously upgrade skills",
	},
	Quotes: []string{
		"The future belongs to those who believe in the beauty of their dreams. - Eleanor Roosevelt",
		"Success is not final, failure is not fatal: it is the courage to continue that counts. - Winston Churchill",
		"Believe you can and you're halfway there. - Theodore Roosevelt",
		"Your limitation—it's only your imagination.",
		"Dream big and dare to fail. - Norman Vaughan",
	},
}
