// SPDX-License-Identifier: MIT

package catalog

// Built-in fallback datasets for Night of the Living Dead (1968, public
// domain), substituted whenever a backend dataset is unreachable. Each
// function returns a fresh copy so callers can never mutate the built-ins.

// FallbackMovie returns the static movie metadata document.
func FallbackMovie() *Movie {
	return &Movie{
		Film: Film{
			FileURL:     "https://upload.wikimedia.org/wikipedia/commons/2/24/Night_of_the_Living_Dead_%281968%29.webm",
			Title:       "Night of the Living Dead",
			SynopsisURL: "https://en.wikipedia.org/wiki/Night_of_the_Living_Dead",
		},
		Subtitles: Subtitles{
			EN: "https://tp-iai3.cleverapps.io/projet/subtitles-en.srt",
			FR: "https://tp-iai3.cleverapps.io/projet/subtitles-fr.srt",
			ES: "https://tp-iai3.cleverapps.io/projet/subtitles-es.srt",
		},
		AudioDescription: "https://tp-iai3.cleverapps.io/projet/description.json",
		Chapters:         "https://tp-iai3.cleverapps.io/projet/chapters.json",
		POI:              "https://tp-iai3.cleverapps.io/projet/poi.json",
	}
}

// FallbackChapters returns the static chapter list.
func FallbackChapters() []Chapter {
	return []Chapter{
		{
			Chapter: 1, Timestamp: "00:00:00",
			Title: "The Cemetery", TitleFR: "Le Cimetière", TitleES: "El Cementerio",
			Description:   "Barbara and Johnny visit their father's grave in a remote Pennsylvania cemetery.",
			DescriptionFR: "Barbara et Johnny visitent la tombe de leur père dans un cimetière isolé de Pennsylvanie.",
			DescriptionES: "Barbara y Johnny visitan la tumba de su padre en un cementerio remoto de Pensilvania.",
		},
		{
			Chapter: 2, Timestamp: "00:09:30",
			Title: "The Farmhouse", TitleFR: "La Ferme", TitleES: "La Granja",
			Description:   "Barbara finds refuge in an isolated farmhouse.",
			DescriptionFR: "Barbara trouve refuge dans une ferme isolée.",
			DescriptionES: "Barbara encuentra refugio en una granja aislada.",
		},
		{
			Chapter: 3, Timestamp: "00:20:00",
			Title: "Barricading and News Reports", TitleFR: "Barricades et Bulletins d'Information", TitleES: "Barricadas y Noticias",
			Description:   "Ben takes charge, boarding up windows and doors.",
			DescriptionFR: "Ben prend les choses en main, condamnant les fenêtres et les portes.",
			DescriptionES: "Ben toma el mando, tapiando ventanas y puertas.",
		},
		{
			Chapter: 4, Timestamp: "00:32:00",
			Title: "The Cellar Dwellers Revealed", TitleFR: "Les Occupants de la Cave Révélés", TitleES: "Los Habitantes del Sótano Revelados",
			Description:   "Harry Cooper and others emerge from the cellar.",
			DescriptionFR: "Harry Cooper et les autres sortent de la cave.",
			DescriptionES: "Harry Cooper y otros emergen del sótano.",
		},
		{
			Chapter: 5, Timestamp: "00:45:00",
			Title: "The Plan", TitleFR: "Le Plan", TitleES: "El Plan",
			Description:   "The group devises a plan to refuel the truck and escape.",
			DescriptionFR: "Le groupe élabore un plan pour faire le plein du camion et s'échapper.",
			DescriptionES: "El grupo idea un plan para repostar el camión y escapar.",
		},
		{
			Chapter: 6, Timestamp: "01:00:00",
			Title: "The Failed Escape", TitleFR: "L'Évasion Ratée", TitleES: "El Escape Fallido",
			Description:   "The escape attempt goes tragically wrong.",
			DescriptionFR: "La tentative d'évasion tourne tragiquement mal.",
			DescriptionES: "El intento de escape sale trágicamente mal.",
		},
		{
			Chapter: 7, Timestamp: "01:15:00",
			Title: "The Final Siege", TitleFR: "Le Siège Final", TitleES: "El Asedio Final",
			Description:   "The ghouls breach the farmhouse defenses.",
			DescriptionFR: "Les goules franchissent les défenses de la ferme.",
			DescriptionES: "Los necrófagos rompen las defensas de la granja.",
		},
		{
			Chapter: 8, Timestamp: "01:25:00",
			Title: "Dawn and Rescue", TitleFR: "L'Aube et le Sauvetage", TitleES: "El Amanecer y el Rescate",
			Description:   "Morning comes with a devastating conclusion.",
			DescriptionFR: "Le matin arrive avec une conclusion dévastatrice.",
			DescriptionES: "La mañana llega con una conclusión devastadora.",
		},
	}
}

// FallbackScenes returns the static audio-description script.
func FallbackScenes() []Scene {
	return []Scene{
		{
			Scene: 1, Timestamp: "00:00:00",
			Description:   "Black and white film. Opening credits appear over a winding country road.",
			DescriptionFR: "Film en noir et blanc. Le générique d'ouverture apparaît sur une route de campagne sinueuse.",
			DescriptionES: "Película en blanco y negro. Los créditos de apertura aparecen sobre un camino rural serpenteante.",
		},
		{
			Scene: 2, Timestamp: "00:02:00",
			Description:   "A car drives through the Pennsylvania countryside. Inside, a young woman and a man.",
			DescriptionFR: "Une voiture traverse la campagne de Pennsylvanie. À l'intérieur, une jeune femme et un homme.",
			DescriptionES: "Un coche atraviesa el campo de Pensilvania. Dentro, una joven y un hombre.",
		},
		{
			Scene: 3, Timestamp: "00:05:20",
			Description:   "The pale-faced man attacks. Johnny tries to fight him off but is thrown against a gravestone.",
			DescriptionFR: "L'homme au visage pâle attaque. Johnny essaie de le repousser mais est projeté contre une pierre tombale.",
			DescriptionES: "El hombre de rostro pálido ataca. Johnny intenta rechazarlo pero es arrojado contra una lápida.",
		},
		{
			Scene: 4, Timestamp: "00:10:00",
			Description:   "Barbara runs through the cemetery, terrified. She reaches an abandoned farmhouse.",
			DescriptionFR: "Barbara court à travers le cimetière, terrifiée. Elle atteint une ferme abandonnée.",
			DescriptionES: "Barbara corre por el cementerio, aterrorizada. Llega a una granja abandonada.",
		},
		{
			Scene: 5, Timestamp: "00:20:00",
			Description:   "Ben arrives at the farmhouse. He starts boarding up the windows and doors.",
			DescriptionFR: "Ben arrive à la ferme. Il commence à condamner les fenêtres et les portes.",
			DescriptionES: "Ben llega a la granja. Comienza a tapiar las ventanas y puertas.",
		},
	}
}

// FallbackPOI returns the static points of interest.
func FallbackPOI() []POI {
	return []POI{
		{
			ID: 1, Title: "Evans City Cemetery", TitleFR: "Cimetière d'Evans City", TitleES: "Cementerio de Evans City",
			Latitude: 40.7664, Longitude: -80.0617,
			Description: "The opening scene was shot at Evans City Cemetery, Pennsylvania.",
			Timestamps: []POITimestamp{
				{Time: "00:00:00", Scene: "Opening credits", SceneFR: "Générique d'ouverture", SceneES: "Créditos iniciales"},
				{Time: "00:05:20", Scene: "The first attack", SceneFR: "La première attaque", SceneES: "El primer ataque"},
			},
		},
		{
			ID: 2, Title: "The Farmhouse", TitleFR: "La Ferme", TitleES: "La Granja",
			Latitude: 40.7789, Longitude: -80.0583,
			Description: "The farmhouse set stood near Evans City; it was demolished after filming.",
			Timestamps: []POITimestamp{
				{Time: "00:09:30", Scene: "Barbara finds refuge", SceneFR: "Barbara trouve refuge", SceneES: "Barbara encuentra refugio"},
				{Time: "01:15:00", Scene: "The final siege", SceneFR: "Le siège final", SceneES: "El asedio final"},
			},
		},
		{
			ID: 3, Title: "WIIC-TV Studio, Pittsburgh", TitleFR: "Studio WIIC-TV, Pittsburgh", TitleES: "Estudio WIIC-TV, Pittsburgh",
			Latitude: 40.4406, Longitude: -79.9959,
			Description: "The news broadcasts were filmed at the WIIC-TV studios in Pittsburgh.",
			Timestamps: []POITimestamp{
				{Time: "00:20:00", Scene: "News reports", SceneFR: "Bulletins d'information", SceneES: "Noticias"},
			},
		},
	}
}
