package content

// Static payloads served whenever the live spreadsheet is unavailable.

// FallbackMenu returns the hardcoded menu.
func FallbackMenu() Menu {
	return Menu{
		CafesYBebidas: MenuCategory{
			Title: "Cafes y Bebidas",
			Items: []MenuItem{
				{
					ID:          "b1",
					Name:        "Chuflay de arándanos",
					Description: " Versión frutal del clásico Chuflay, con singani, ginger ale y toque de arándanos, aportando dulzura y color vibrante.",
					Price:       "39 Bs",
					Image:       "/menu/cafes_bebidas/chuflay_arandanos.jpg",
					Tags:        []string{"Coctelería"},
					Historical:  "",
				},
				{
					ID:          "b2",
					Name:        "DS 21060",
					Description: "Vermouth, vodka y singani, con almíbar y limón fresco, completada con agua tónica para un toque burbujeante y equilibrado.",
					Price:       "42 Bs",
					Image:       "/menu/cafes_bebidas/ds_21060.jpg",
					Tags:        []string{"Cocteleria", "De la Casa"},
					Historical:  "",
				},
				{
					ID:          "b3",
					Name:        "Chuflay",
					Description: "Tradicional boliviano con singani y ginger ale, servido con hielo y rodaja de limón.",
					Price:       "39 Bs",
					Image:       "/menu/menu_placeholder.png",
					Tags:        []string{"Coctelería", "Frio"},
					Historical:  "",
				},
				{
					ID:          "b4",
					Name:        "Chola Latte",
					Description: "A rich latte with hints of chocolate and chuño (freeze-dried potato), a unique Bolivian twist.",
					Price:       "18 Bs",
					Image:       "/menu/menu_placeholder.png",
					Tags:        []string{"Hot"},
					Historical:  "Honors the iconic Cholitas, indigenous Bolivian women",
				},
				{
					ID:          "b5",
					Name:        "Singani sour",
					Description: "Singani, zumo de limón, jarabe de azúcar, clara de huevo y angostura.",
					Price:       "39 Bs",
					Image:       "/menu/menu_placeholder.png",
					Tags:        []string{"Coctelería", "Frio"},
					Historical:  "",
				},
				{
					ID:          "b6",
					Name:        "Golpe de estado",
					Description: "Shot de tequila con triple sec, acompañado de un gajo de limón encostrado en azúcar y ajíes nativos",
					Price:       "33 Bs",
					Image:       "/menu/menu_placeholder.png",
					Tags:        []string{"Coctelería", "Frio"},
					Historical:  "",
				},
			},
		},
		Autor: MenuCategory{
			Title: "Cocina de Autor",
			Items: []MenuItem{
				{
					ID:          "c1",
					Name:        "Domitila",
					Description: "Cerdo bañado en velouté de ají amarillo con encurtidos de zanahoria, cebolla y tomate.",
					Price:       "66 Bs",
					Image:       "/menu/cocina_de_autor/domitila.jpg",
					Tags:        []string{"Auténtico", "Sandwich"},
					Historical:  "Inspirado en la fuerza y el carácter de Domitila Barrios de Chungara, figura emblemáticas de la resistencia obrera y femenina en Bolivia.",
				},
				{
					ID:          "c2",
					Name:        "Incahuasi",
					Description: "Bife ancho con queso criollo gratinado, rúcula, cebolla y pimiento caramelizados, mayonesa de ají de padilla.",
					Price:       "66 Bs",
					Image:       "/menu/menu_placeholder.png",
					Tags:        []string{"Sandwich"},
					Historical:  "Incahuasi, que en quechua significa 'la casa del Inca'",
				},
				{
					ID:          "c3",
					Name:        "Gran Poder",
					Description: "Anticucho salteado, lechuga suiza, pimiento morrón, choclo y salsa de maní ahumada",
					Price:       "66 Bs",
					Image:       "/menu/cocina_de_autor/gran_poder.jpg",
					Tags:        []string{"Sandwich"},
					Historical:  "Inspirado en la fiesta mayor de los Andes, una explosión de identidad, devoción y cultura popular que cada año transforma las calles de La Paz.",
				},
				{
					ID:          "c4",
					Name:        "Crispy Colonial",
					Description: "Pollo frito bañado en salsa barbacoa, coleslaw, brotes y semillas de sésamo.",
					Price:       "66 Bs",
					Image:       "/menu/cocina_de_autor/crispy_colonial.jpg",
					Tags:        []string{"Sandwich"},
					Historical:  "Inspirado en la Colonia, una época de imposiciones, contrastes y resistencias en Bolivia.",
				},
				{
					ID:          "c5",
					Name:        "Neo Liberal",
					Description: "Desayuno clásico con pan baguette, mantequilla y mermelada, huevos revueltos cubiertos con miel, bowl de yogurt con frutillas y granola. Incluye una bebida fria y caliente",
					Price:       "70 Bs",
					Image:       "/menu/cocina_de_autor/neo_liberal.png",
					Tags:        []string{"Desayuno"},
					Historical:  "El neoliberalismo es una corriente de pensamiento económico y político que enfatiza la importancia del libre mercado y la minimización de la intervención estatal en la economía.",
				},
				{
					ID:          "c6",
					Name:        "Pachacuti",
					Description: "Salsa de tomate casera con notas ahumadas, huevo pochado, chorizo chuquisaqueño, tocino y bocconcinos de queso criollo acompañado con tostadas.",
					Price:       "60 Bs",
					Image:       "/menu/cocina_de_autor/pachacuti.jpg",
					Tags:        []string{"Desayuno"},
					Historical:  "Noveno gobernante del Estado inca, y quien lo gobernó en su expansión desde un curacazgo regional hasta convertirse en un imperio.",
				},
				{
					ID:          "c7",
					Name:        "Compadre",
					Description: "Pan campesino con queso crema de paprika, rodajas de palta, huevos benedictinos con salsa holandesa, bowl de yogurt con frutas y granola",
					Price:       "68 Bs",
					Image:       "/menu/cocina_de_autor/compadre.jpg",
					Tags:        []string{"Desayuno"},
					Historical:  "Persona con quien se ha establecido un lazo de compadrazgo, generalmente a través de un bautizo, primera comunión o, en algunos casos, una boda",
				},
				{
					ID:          "c8",
					Name:        "El Fundido Del Libertador",
					Description: "Dos tostadas de pan campesino, tres tipos de queso, jamón ahumado y cubierto con huevo frito.",
					Price:       "55 Bs",
					Image:       "/menu/cocina_de_autor/el_fundido_del_lib.jpg",
					Tags:        []string{"Desayuno"},
					Historical:  "Estatua ecuestre de Simón Bolívar, una escultura de bronce fundido ubicada en la Plaza Bolívar de Caracas.",
				},
				{
					ID:          "c9",
					Name:        "Reforma Agraria",
					Description: "Mix de quinuas, porotos, garbanzos, mango, cebolla, pimiento morrón, palta, cilantro y bañado en un alioli de ajíes nativos.",
					Price:       "66 Bs",
					Image:       "/menu/cocina_de_autor/reforma_agraria.webp",
					Tags:        []string{"Rebowlucion", "Auténtico"},
					Historical:  "Inspirado en el histórico Decreto de Reforma Agraria de 1953, que transformó el acceso a la tierra en Bolivia, rinde homenaje a las raíces campesinas y diversidad de ingredientes que nacen de nuestra tierra.",
				},
				{
					ID:          "c10",
					Name:        "Revolución",
					Description: "Bife angosto, base de lechuga crespa, rúcula, tomates frescos, cebolla, requesón, pepino, frutillas con aceto balsámico.",
					Price:       "66 Bs",
					Image:       "/menu/cocina_de_autor/revolucion.webp",
					Tags:        []string{"Rebowlucion"},
					Historical:  "Movimiento social y político que marcó un cambio fundamental en la historia de Bolivia",
				},
				{
					ID:          "c11",
					Name:        "Urus",
					Description: "Trucha encostrada en quinua, una base de rúcula y espinaca morada, pepino, palta, semillas de girasol, requesón y alioli de cilantro con crujientes de camote.",
					Price:       "73 Bs",
					Image:       "/menu/cocina_de_autor/urus.webp",
					Tags:        []string{"Rebowlucion"},
					Historical:  "Pueblo indígena que se distribuye en la meseta del Collao en territorios de Bolivia",
				},
				{
					ID:          "c12",
					Name:        "Obrera",
					Description: "Mix de lechugas, tomates frescos, requesón, pollo frito, tocino, piña asada y aderezo de miel y mostaza.",
					Price:       "66 Bs",
					Image:       "/menu/menu_placeholder.png",
					Tags:        []string{"Rebowlucion"},
					Historical:  "",
				},
			},
		},
		Pasteleria: MenuCategory{
			Title: "Pastelería",
			Items: []MenuItem{
				{
					ID:          "d1",
					Name:        "Torta de chocolate",
					Description: "Húmeda rellena de dulce de leche con cobertura de ganache de chocolate semiamargo",
					Price:       "25 Bs",
					Image:       "/menu/pasteleria/cake_choc.webp",
					Tags:        []string{"Dulce"},
					Historical:  "",
				},
			},
		},
	}
}

// FallbackEvents returns the hardcoded events.
func FallbackEvents() []Event {
	return []Event{
		{
			ID:          "e1",
			Title:       "Bolivian Coffee Tasting Workshop",
			Date:        "2025-05-15T00:00:00",
			Time:        "4:00 PM - 6:00 PM",
			Location:    "Main Hall",
			Description: "Learn to make Bolivia's famous salteñas from scratch with our head chef. Ingredients and recipes provided.",
			Image:       "/events/event-1.jpg",
			Category:    "workshop",
			Capacity:    20,
		},
		{
			ID:          "e2",
			Title:       "Andean Music Performance",
			Date:        "2025-05-20T00:00:00",
			Time:        "7:00 PM - 9:00 PM",
			Location:    "Outdoor Patio",
			Description: "Experience the rich sounds of traditional Andean music with a live performance featuring panpipes, charango, and other indigenous instruments.",
			Image:       "/events/event-2.jpg",
			Category:    "performance",
			Capacity:    50,
		},
		{
			ID:          "e3",
			Title:       "Bolivian History Book Club",
			Date:        "2025-05-25T00:00:00",
			Time:        "6:00 PM - 8:00 PM",
			Location:    "Library Corner",
			Description: "This month we're discussing 'The Bolivian Revolution: A Contemporary History' by James Dunkerley. New members welcome!",
			Image:       "/events/event-3.jpg",
			Category:    "meeting",
			Capacity:    15,
		},
		{
			ID:          "e4",
			Title:       "Traditional Weaving Exhibition",
			Date:        "2025-06-01T00:00:00",
			Time:        "10:00 AM - 8:00 PM",
			Location:    "Gallery Space",
			Description: "A two-week exhibition showcasing the intricate textile traditions of Bolivia's indigenous communities, featuring works from artisans across the country.",
			Image:       "/events/event-4.jpg",
			Category:    "exhibition",
			Capacity:    100,
		},
		{
			ID:          "e5",
			Title:       "Bolivian Cooking Class: Salteñas",
			Date:        "2025-06-10T00:00:00",
			Time:        "2:00 PM - 5:00 PM",
			Location:    "Kitchen",
			Description: "Learn to make Bolivia's famous salteñas from scratch with our head chef. Ingredients and recipes provided.",
			Image:       "/events/event-5.jpg",
			Category:    "workshop",
			Capacity:    12,
		},
		{
			ID:          "e6",
			Title:       "Political Discussion: Bolivia's Future",
			Date:        "2025-06-18T00:00:00",
			Time:        "6:30 PM - 8:30 PM",
			Location:    "Main Hall",
			Description: "A moderated panel discussion with political scientists and community leaders about Bolivia's current challenges and future prospects.",
			Image:       "/events/event-6.jpg",
			Category:    "meeting",
			Capacity:    40,
		},
	}
}
