package catalog

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedCategories() []Category {
	return []Category{
		{
			ID:          "grafiti",
			Name:        "Grafiti & Arte Urbano",
			Slug:        "grafiti",
			Description: "Todo lo que necesitas para pintar: sprays, caps, marcadores y herramientas profesionales",
			Image:       "/images/categories/grafiti.jpg",
			Icon:        "🎨",
			Subcategories: []Subcategory{
				{ID: "sprays", Name: "Latas de Spray", Slug: "sprays", Description: "Montana, Molotow, Loop y más marcas profesionales"},
				{ID: "caps", Name: "Caps (Boquillas)", Slug: "caps", Description: "Skinny, fat, calligraphy y sets profesionales"},
				{ID: "marcadores", Name: "Marcadores & Rotuladores", Slug: "marcadores", Description: "Markers permanentes, mops y paint markers"},
				{ID: "proteccion", Name: "Equipo de Protección", Slug: "proteccion", Description: "Mascarillas, guantes y gafas de seguridad"},
				{ID: "herramientas-grafiti", Name: "Herramientas & Utilidades", Slug: "herramientas-grafiti", Description: "Blackbooks, lápices y transporte"},
			},
		},
		{
			ID:          "tattoo",
			Name:        "Tattoo & Tatuajes",
			Slug:        "tattoo",
			Description: "Equipamiento profesional para tatuadores: máquinas, tintas, agujas y cuidado",
			Image:       "/images/categories/tattoo.jpg",
			Icon:        "💉",
			Subcategories: []Subcategory{
				{ID: "maquinas", Name: "Máquinas de Tatuar", Slug: "maquinas", Description: "Rotary, Coil, Pen y fuentes de alimentación"},
				{ID: "consumibles-tattoo", Name: "Consumibles", Slug: "consumibles-tattoo", Description: "Agujas, cartuchos y tintas profesionales"},
				{ID: "higiene", Name: "Higiene & Bioseguridad", Slug: "higiene", Description: "Guantes, cubiertas y jabones antibacterianos"},
				{ID: "transfer", Name: "Diseño & Transfer", Slug: "transfer", Description: "Papel stencil, lápices térmicos y aplicadores"},
				{ID: "aftercare", Name: "Cuidado Post-Tatuaje", Slug: "aftercare", Description: "Cremas, protector solar y kits de aftercare"},
			},
		},
		{
			ID:          "ropa",
			Name:        "Ropa & Moda Urbana",
			Slug:        "ropa",
			Description: "Estilo callejero auténtico: camisetas, hoodies, gorras y calzado",
			Image:       "/images/categories/ropa.jpg",
			Icon:        "👕",
			Subcategories: []Subcategory{
				{ID: "camisetas", Name: "Camisetas", Slug: "camisetas", Description: "Diseños exclusivos y colaboraciones con artistas"},
				{ID: "hoodies", Name: "Hoodies & Sudaderas", Slug: "hoodies", Description: "Sudaderas con capucha y crew necks"},
				{ID: "gorras", Name: "Gorras & Accesorios", Slug: "gorras", Description: "Snapbacks, beanies y bandanas"},
				{ID: "pantalones", Name: "Pantalones", Slug: "pantalones", Description: "Baggy, joggers y shorts"},
				{ID: "calzado", Name: "Calzado", Slug: "calzado", Description: "Sneakers y ediciones limitadas"},
			},
		},
		{
			ID:          "accesorios",
			Name:        "Accesorios & Merch",
			Slug:        "accesorios",
			Description: "Stickers, parches, pins y todo el merchandising urbano",
			Image:       "/images/categories/accesorios.jpg",
			Icon:        "🏷️",
			Subcategories: []Subcategory{
				{ID: "stickers", Name: "Stickers & Adhesivos", Slug: "stickers", Description: "Packs variados y stickers de artistas"},
				{ID: "parches", Name: "Parches", Slug: "parches", Description: "Bordados, PVC y con velcro"},
				{ID: "pins", Name: "Pins & Chapas", Slug: "pins", Description: "Coleccionables y ediciones limitadas"},
				{ID: "utilitarios", Name: "Utilitarios", Slug: "utilitarios", Description: "Llaveros, fundas y tarjeteros"},
			},
		},
		{
			ID:          "musica",
			Name:        "Música & DJ",
			Slug:        "musica",
			Description: "Vinilos, equipo DJ y todo para la cultura del sonido",
			Image:       "/images/categories/musica.jpg",
			Icon:        "🎧",
			Subcategories: []Subcategory{
				{ID: "vinilos", Name: "Vinilos & Discos", Slug: "vinilos", Description: "Hip Hop clásico, breakbeats y ediciones especiales"},
				{ID: "equipo-dj", Name: "Equipo DJ", Slug: "equipo-dj", Description: "Controladores, auriculares y fundas"},
				{ID: "accesorios-musica", Name: "Accesorios", Slug: "accesorios-musica", Description: "Pads, micrófonos y software"},
			},
		},
		{
			ID:          "libros",
			Name:        "Libros & Revistas",
			Slug:        "libros",
			Description: "Conocimiento urbano: historia del grafiti, técnicas y cultura",
			Image:       "/images/categories/libros.jpg",
			Icon:        "📚",
			Subcategories: []Subcategory{
				{ID: "arte-tecnica", Name: "Arte & Técnica", Slug: "arte-tecnica", Description: "Historia del grafiti y tutoriales"},
				{ID: "cultura-hiphop", Name: "Cultura Hip Hop", Slug: "cultura-hiphop", Description: "Historias, biografías y fotografía urbana"},
				{ID: "revistas", Name: "Revistas & Fanzines", Slug: "revistas", Description: "Publicaciones especializadas e independientes"},
			},
		},
		{
			ID:          "decoracion",
			Name:        "Decoración & Arte",
			Slug:        "decoracion",
			Description: "Lleva el arte urbano a tu espacio: lienzos, vinilos y figuras",
			Image:       "/images/categories/decoracion.jpg",
			Icon:        "🖼️",
			Subcategories: []Subcategory{
				{ID: "arte-pared", Name: "Arte en Pared", Slug: "arte-pared", Description: "Lienzos, cuadros y vinilos decorativos"},
				{ID: "figuras", Name: "Figuras & Vinyl Toys", Slug: "figuras", Description: "Coleccionables y designer toys"},
				{ID: "objetos-deco", Name: "Objetos Decorativos", Slug: "objetos-deco", Description: "Alfombras, lámparas y más"},
			},
		},
		{
			ID:          "coleccionables",
			Name:        "Coleccionables & Rarezas",
			Slug:        "coleccionables",
			Description: "Piezas únicas: ediciones limitadas, vintage y arte exclusivo",
			Image:       "/images/categories/coleccionables.jpg",
			Icon:        "💎",
			Subcategories: []Subcategory{
				{ID: "ediciones-limitadas", Name: "Ediciones Limitadas", Slug: "ediciones-limitadas", Description: "Sprays coleccionables y ropa numerada"},
				{ID: "vintage", Name: "Vintage & Retro", Slug: "vintage", Description: "Ropa vintage y material descatalogado"},
				{ID: "arte-exclusivo", Name: "Arte Exclusivo", Slug: "arte-exclusivo", Description: "Prints firmados y piezas únicas"},
			},
		},
	}
}

func seedProducts() []Product {
	return []Product{
		{
			ID: "montana-94-negro", Name: "Montana 94 Negro Mate 400ml", Slug: "montana-94-negro",
			ShortDescription: "Spray mate de baja presión, el clásico para piezas",
			Description:      "Lata Montana Colors 94 de 400ml en negro mate. Baja presión, acabado mate y secado rápido, ideal para contornos y detalle fino.",
			Price:            28000, CompareAtPrice: 32000,
			Images:     []string{"/images/products/montana-94-negro.jpg"},
			CategoryID: "grafiti", SubcategoryID: "sprays", Stock: 48, SKU: "GRA-SPR-001",
			Tags: []string{"grafiti", "spray", "montana"}, Brand: "Montana Colors",
			Featured: true, CreatedAt: day(2024, time.January, 12), UpdatedAt: day(2024, time.June, 3),
		},
		{
			ID: "molotow-premium-400", Name: "Molotow Premium 400ml Dorado", Slug: "molotow-premium-400",
			ShortDescription: "Cobertura extrema y dorado metalizado",
			Description:      "Molotow Premium con la mayor cobertura del mercado. Dorado metalizado, válvula flowmaster y compatibilidad con todos los caps estándar.",
			Price:            34000,
			Images:           []string{"/images/products/molotow-premium-400.jpg"},
			CategoryID:       "grafiti", SubcategoryID: "sprays", Stock: 25, SKU: "GRA-SPR-002",
			Tags: []string{"grafiti", "spray", "metalizado"}, Brand: "Molotow",
			IsNew: true, CreatedAt: day(2024, time.July, 18), UpdatedAt: day(2024, time.July, 18),
		},
		{
			ID: "set-caps-pro-50", Name: "Set de Caps Pro 50 Piezas",
			ShortDescription: "Skinny, fat y calligraphy en un solo set",
			Description:      "Set surtido de 50 boquillas: skinny para trazo fino, fat para rellenos y calligraphy para efectos. Compatible con Montana, Molotow y Loop.",
			Price:            45000,
			Images:           []string{"/images/products/set-caps-pro-50.jpg"},
			CategoryID:       "grafiti", SubcategoryID: "caps", Stock: 60, SKU: "GRA-CAP-001",
			Tags: []string{"grafiti", "caps"},
			CreatedAt: day(2024, time.February, 2), UpdatedAt: day(2024, time.February, 2),
		},
		{
			ID: "posca-pc5m-pack8", Name: "Pack 8 Posca PC-5M Básicos", Slug: "posca-pc5m-pack8",
			ShortDescription: "Los paint markers más versátiles",
			Description:      "Pack de 8 marcadores Posca PC-5M punta media. Pintura al agua opaca que funciona sobre casi cualquier superficie: papel, madera, vidrio y metal.",
			Price:            95000, CompareAtPrice: 110000,
			Images:     []string{"/images/products/posca-pc5m-pack8.jpg"},
			CategoryID: "grafiti", SubcategoryID: "marcadores", Stock: 18, SKU: "GRA-MAR-001",
			Tags: []string{"grafiti", "marcadores", "posca"}, Brand: "Posca",
			Featured: true, CreatedAt: day(2024, time.March, 9), UpdatedAt: day(2024, time.May, 21),
		},
		{
			ID: "mascarilla-3m-6200", Name: "Mascarilla 3M 6200 con Filtros", Slug: "mascarilla-3m-6200",
			ShortDescription: "Protección respiratoria para sesiones largas",
			Description:      "Respirador de media cara 3M 6200 con filtros para vapores orgánicos. Imprescindible para pintar en espacios cerrados o sesiones largas.",
			Price:            120000,
			Images:           []string{"/images/products/mascarilla-3m-6200.jpg"},
			CategoryID:       "grafiti", SubcategoryID: "proteccion", Stock: 12, SKU: "GRA-PRO-001",
			Tags: []string{"grafiti", "proteccion", "seguridad"}, Brand: "3M",
			CreatedAt: day(2023, time.November, 5), UpdatedAt: day(2024, time.April, 2),
		},
		{
			ID: "blackbook-a4-urban", Name: "Blackbook A4 Urban Sketch",
			ShortDescription: "Papel de 180g para bocetos y outlines",
			Description:      "Cuaderno de bocetos A4 tapa dura con papel de 180g apto para marker y tinta. El laboratorio de todo escritor de grafiti.",
			Price:            38000,
			Images:           []string{"/images/products/blackbook-a4-urban.jpg"},
			CategoryID:       "grafiti", SubcategoryID: "herramientas-grafiti", Stock: 3, SKU: "GRA-HER-001",
			Tags: []string{"grafiti", "blackbook", "sketch"},
			IsNew: true, CreatedAt: day(2024, time.August, 1), UpdatedAt: day(2024, time.August, 1),
		},
		{
			ID: "cheyenne-hawk-pen", Name: "Cheyenne Hawk Pen Negra", Slug: "cheyenne-hawk-pen",
			ShortDescription: "La pen alemana de referencia",
			Description:      "Máquina tipo pen Cheyenne Hawk con motor silencioso, agarre ergonómico de 25mm y compatibilidad con cartuchos de seguridad.",
			Price:            2450000,
			Images:           []string{"/images/products/cheyenne-hawk-pen.jpg"},
			CategoryID:       "tattoo", SubcategoryID: "maquinas", Stock: 5, SKU: "TAT-MAQ-001",
			Tags: []string{"tattoo", "maquina", "pen"}, Brand: "Cheyenne",
			Featured: true, CreatedAt: day(2024, time.January, 25), UpdatedAt: day(2024, time.June, 30),
		},
		{
			ID: "fuente-critical-cx2", Name: "Fuente Critical CX-2R", Slug: "fuente-critical-cx2",
			ShortDescription: "Fuente de poder con memoria dual",
			Description:      "Fuente de alimentación Critical CX-2R con dos memorias programables, pantalla táctil y control de voltaje de precisión.",
			Price:            1350000, CompareAtPrice: 1500000,
			Images:     []string{"/images/products/fuente-critical-cx2.jpg"},
			CategoryID: "tattoo", SubcategoryID: "maquinas", Stock: 7, SKU: "TAT-MAQ-002",
			Tags: []string{"tattoo", "fuente"}, Brand: "Critical",
			CreatedAt: day(2023, time.December, 14), UpdatedAt: day(2024, time.March, 8),
		},
		{
			ID: "cartuchos-kwadron-rl", Name: "Cartuchos Kwadron 9RL x20", Slug: "cartuchos-kwadron-rl",
			ShortDescription: "Caja de 20 cartuchos round liner",
			Description:      "Cartuchos Kwadron 9 round liner con membrana de seguridad y agujas de precisión texturizada. Caja sellada de 20 unidades.",
			Price:            145000,
			Images:           []string{"/images/products/cartuchos-kwadron-rl.jpg"},
			CategoryID:       "tattoo", SubcategoryID: "consumibles-tattoo", Stock: 40, SKU: "TAT-CON-001",
			Tags: []string{"tattoo", "cartuchos", "agujas"}, Brand: "Kwadron",
			IsNew: true, CreatedAt: day(2024, time.July, 2), UpdatedAt: day(2024, time.July, 2),
		},
		{
			ID: "tinta-eternal-negro", Name: "Tinta Eternal Ink Negro 2oz", Slug: "tinta-eternal-negro",
			ShortDescription: "Negro sólido para líneas y relleno",
			Description:      "Tinta Eternal Ink Triple Black de 2oz. Pigmento vegano de alta densidad, estéril y fabricado en USA.",
			Price:            110000,
			Images:           []string{"/images/products/tinta-eternal-negro.jpg"},
			CategoryID:       "tattoo", SubcategoryID: "consumibles-tattoo", Stock: 22, SKU: "TAT-CON-002",
			Tags: []string{"tattoo", "tinta"}, Brand: "Eternal Ink",
			CreatedAt: day(2024, time.February, 19), UpdatedAt: day(2024, time.February, 19),
		},
		{
			ID: "papel-stencil-spirit", Name: "Papel Stencil Spirit x100", Slug: "papel-stencil-spirit",
			ShortDescription: "El papel de transferencia clásico",
			Description:      "Caja de 100 hojas de papel hectográfico Spirit Classic para transferencia manual o con impresora térmica.",
			Price:            185000,
			Images:           []string{"/images/products/papel-stencil-spirit.jpg"},
			CategoryID:       "tattoo", SubcategoryID: "transfer", Stock: 15, SKU: "TAT-TRA-001",
			Tags: []string{"tattoo", "stencil", "transfer"}, Brand: "Spirit",
			CreatedAt: day(2023, time.October, 30), UpdatedAt: day(2024, time.January, 15),
		},
		{
			ID: "camiseta-wildstyle", Name: "Camiseta Wildstyle Negra", Slug: "camiseta-wildstyle",
			ShortDescription: "Serigrafía de un wildstyle original",
			Description:      "Camiseta oversize de algodón 220g con serigrafía de un wildstyle exclusivo pintado para la tienda. Edición numerada.",
			Price:            75000, CompareAtPrice: 90000,
			Images:     []string{"/images/products/camiseta-wildstyle.jpg"},
			CategoryID: "ropa", SubcategoryID: "camisetas", Stock: 30, SKU: "ROP-CAM-001",
			Tags: []string{"ropa", "grafiti", "hip-hop"},
			Featured: true, IsNew: true, CreatedAt: day(2024, time.June, 20), UpdatedAt: day(2024, time.June, 20),
		},
		{
			ID: "hoodie-throwup-gris", Name: "Hoodie Throw Up Gris", Slug: "hoodie-throwup-gris",
			ShortDescription: "Capucha amplia y bolsillo canguro",
			Description:      "Sudadera con capucha de felpa 320g con bordado frontal de un throw up clásico. Corte amplio estilo noventas.",
			Price:            145000,
			Images:           []string{"/images/products/hoodie-throwup-gris.jpg"},
			CategoryID:       "ropa", SubcategoryID: "hoodies", Stock: 16, SKU: "ROP-HOO-001",
			Tags: []string{"ropa", "hoodie", "hip-hop"},
			Featured: true, CreatedAt: day(2024, time.April, 11), UpdatedAt: day(2024, time.May, 2),
		},
		{
			ID: "gorra-snapback-urban", Name: "Gorra Snapback Urban Classic", Slug: "gorra-snapback-urban",
			ShortDescription: "Visera plana y ajuste universal",
			Description:      "Snapback de visera plana con parche bordado. Ajuste trasero de presión, talla única.",
			Price:            55000,
			Images:           []string{"/images/products/gorra-snapback-urban.jpg"},
			CategoryID:       "ropa", SubcategoryID: "gorras", Stock: 44, SKU: "ROP-GOR-001",
			Tags: []string{"ropa", "gorra", "hip-hop"},
			CreatedAt: day(2024, time.January, 8), UpdatedAt: day(2024, time.January, 8),
		},
		{
			ID: "jogger-cargo-street", Name: "Jogger Cargo Street Negro", Slug: "jogger-cargo-street",
			ShortDescription: "Bolsillos cargo y puño elástico",
			Description:      "Pantalón jogger de gabardina elástica con bolsillos cargo laterales y puño en tobillo. Pensado para pintar y moverse.",
			Price:            125000,
			Images:           []string{"/images/products/jogger-cargo-street.jpg"},
			CategoryID:       "ropa", SubcategoryID: "pantalones", Stock: 20, SKU: "ROP-PAN-001",
			Tags: []string{"ropa", "pantalon"},
			CreatedAt: day(2024, time.March, 27), UpdatedAt: day(2024, time.March, 27),
		},
		{
			ID: "sneakers-graff-edition", Name: "Sneakers Graff Edition", Slug: "sneakers-graff-edition",
			ShortDescription: "Colaboración con artista local, agotadas en todas partes",
			Description:      "Sneakers de lona pintadas a mano por un artista local. Cada par es único y viene con certificado firmado.",
			Price:            320000, CompareAtPrice: 360000,
			Images:     []string{"/images/products/sneakers-graff-edition.jpg"},
			CategoryID: "ropa", SubcategoryID: "calzado", Stock: 0, SKU: "ROP-CAL-001",
			Tags: []string{"ropa", "calzado", "edicion-limitada"},
			CreatedAt: day(2024, time.February, 14), UpdatedAt: day(2024, time.July, 9),
		},
		{
			ID: "pack-stickers-artistas", Name: "Pack 50 Stickers de Artistas",
			ShortDescription: "Surtido de 50 stickers de la escena",
			Description:      "Pack surtido con 50 stickers de vinilo de artistas locales e internacionales. Resistentes al agua y al sol.",
			Price:            25000,
			Images:           []string{"/images/products/pack-stickers-artistas.jpg"},
			CategoryID:       "accesorios", SubcategoryID: "stickers", Stock: 80, SKU: "ACC-STI-001",
			Tags: []string{"stickers", "grafiti"},
			IsNew: true, CreatedAt: day(2024, time.August, 5), UpdatedAt: day(2024, time.August, 5),
		},
		{
			ID: "parche-bordado-bboy", Name: "Parche Bordado B-Boy", Slug: "parche-bordado-bboy",
			ShortDescription: "Bordado de alta densidad con velcro",
			Description:      "Parche bordado de 9cm con silueta de b-boy. Respaldo de velcro incluido para chaquetas y mochilas.",
			Price:            18000,
			Images:           []string{"/images/products/parche-bordado-bboy.jpg"},
			CategoryID:       "accesorios", SubcategoryID: "parches", Stock: 65, SKU: "ACC-PAR-001",
			Tags: []string{"parches", "hip-hop", "breakdance"},
			CreatedAt: day(2023, time.September, 22), UpdatedAt: day(2023, time.September, 22),
		},
		{
			ID: "pin-lata-spray", Name: "Pin Esmaltado Lata de Spray", Slug: "pin-lata-spray",
			ShortDescription: "Pin coleccionable esmaltado en duro",
			Description:      "Pin esmaltado en duro con forma de lata de spray, baño niquelado y doble cierre trasero.",
			Price:            15000,
			Images:           []string{"/images/products/pin-lata-spray.jpg"},
			CategoryID:       "accesorios", SubcategoryID: "pins", Stock: 90, SKU: "ACC-PIN-001",
			Tags: []string{"pins", "grafiti", "coleccionable"},
			CreatedAt: day(2024, time.May, 16), UpdatedAt: day(2024, time.May, 16),
		},
		{
			ID: "vinilo-illmatic-lp", Name: "Vinilo Nas - Illmatic LP", Slug: "vinilo-illmatic-lp",
			ShortDescription: "El clásico de 1994 en vinilo de 180g",
			Description:      "Reedición en vinilo de 180g del álbum Illmatic de Nas. Incluye funda interior impresa y código de descarga.",
			Price:            160000,
			Images:           []string{"/images/products/vinilo-illmatic-lp.jpg"},
			CategoryID:       "musica", SubcategoryID: "vinilos", Stock: 10, SKU: "MUS-VIN-001",
			Tags: []string{"musica", "vinilo", "hip-hop"},
			Featured: true, CreatedAt: day(2023, time.August, 8), UpdatedAt: day(2024, time.February, 28),
		},
		{
			ID: "controlador-ddj-flx4", Name: "Controlador Pioneer DDJ-FLX4", Slug: "controlador-ddj-flx4",
			ShortDescription: "Controlador de 2 canales para empezar",
			Description:      "Controlador DJ Pioneer DDJ-FLX4 de dos canales, compatible con rekordbox y Serato. Smart mixing para quien empieza.",
			Price:            1650000, CompareAtPrice: 1800000,
			Images:     []string{"/images/products/controlador-ddj-flx4.jpg"},
			CategoryID: "musica", SubcategoryID: "equipo-dj", Stock: 4, SKU: "MUS-DJ-001",
			Tags: []string{"musica", "dj", "controlador"}, Brand: "Pioneer DJ",
			CreatedAt: day(2024, time.April, 3), UpdatedAt: day(2024, time.April, 3),
		},
		{
			ID: "auriculares-hd25", Name: "Auriculares Sennheiser HD-25", Slug: "auriculares-hd25",
			ShortDescription: "El estándar de cabina desde hace décadas",
			Description:      "Auriculares Sennheiser HD-25 de alta presión sonora, capsula giratoria y repuestos disponibles para toda la vida.",
			Price:            720000,
			Images:           []string{"/images/products/auriculares-hd25.jpg"},
			CategoryID:       "musica", SubcategoryID: "equipo-dj", Stock: 9, SKU: "MUS-DJ-002",
			Tags: []string{"musica", "dj", "auriculares"}, Brand: "Sennheiser",
			IsNew: true, CreatedAt: day(2024, time.July, 25), UpdatedAt: day(2024, time.July, 25),
		},
		{
			ID: "libro-subway-art", Name: "Libro Subway Art", Slug: "libro-subway-art",
			ShortDescription: "La biblia del grafiti neoyorquino",
			Description:      "Edición aniversario de Subway Art, el registro fotográfico de Martha Cooper y Henry Chalfant del grafiti en el metro de Nueva York.",
			Price:            210000,
			Images:           []string{"/images/products/libro-subway-art.jpg"},
			CategoryID:       "libros", SubcategoryID: "arte-tecnica", Stock: 8, SKU: "LIB-ART-001",
			Tags: []string{"libros", "grafiti", "fotografia"},
			Featured: true, CreatedAt: day(2023, time.July, 1), UpdatedAt: day(2024, time.January, 20),
		},
		{
			ID: "revista-stylefile-45", Name: "Revista Stylefile #45",
			ShortDescription: "Styles de Europa y América en 96 páginas",
			Description:      "Número 45 de la revista alemana Stylefile con lo mejor del grafiti europeo y americano del año, entrevistas y fotografía.",
			Price:            42000,
			Images:           []string{"/images/products/revista-stylefile-45.jpg"},
			CategoryID:       "libros", SubcategoryID: "revistas", Stock: 14, SKU: "LIB-REV-001",
			Tags: []string{"libros", "revista", "grafiti"},
			CreatedAt: day(2024, time.May, 30), UpdatedAt: day(2024, time.May, 30),
		},
		{
			ID: "lienzo-tag-custom", Name: "Lienzo Tag Personalizado 60x40", Slug: "lienzo-tag-custom",
			ShortDescription: "Tu nombre pintado por un escritor local",
			Description:      "Lienzo de 60x40cm pintado a mano con el nombre o palabra que elijas, en el estilo del artista de turno. Cada pieza es única.",
			Price:            280000,
			Images:           []string{"/images/products/lienzo-tag-custom.jpg"},
			CategoryID:       "decoracion", SubcategoryID: "arte-pared", Stock: 6, SKU: "DEC-ART-001",
			Tags: []string{"decoracion", "grafiti", "arte"},
			CreatedAt: day(2024, time.March, 18), UpdatedAt: day(2024, time.March, 18),
		},
		{
			ID: "figura-dunny-8", Name: "Figura Kidrobot Dunny 8\"", Slug: "figura-dunny-8",
			ShortDescription: "Vinyl toy de edición limitada",
			Description:      "Figura Dunny de 8 pulgadas diseñada por un artista invitado. Producción limitada con caja numerada.",
			Price:            390000,
			Images:           []string{"/images/products/figura-dunny-8.jpg"},
			CategoryID:       "decoracion", SubcategoryID: "figuras", Stock: 3, SKU: "DEC-FIG-001",
			Tags: []string{"decoracion", "vinyl-toy", "coleccionable"}, Brand: "Kidrobot",
			IsNew: true, CreatedAt: day(2024, time.August, 10), UpdatedAt: day(2024, time.August, 10),
		},
		{
			ID: "spray-coleccion-aniversario", Name: "Spray Colección 30 Aniversario", Slug: "spray-coleccion-aniversario",
			ShortDescription: "Lata conmemorativa numerada, solo 500 unidades",
			Description:      "Lata conmemorativa del 30 aniversario de Montana Colors con diseño serigrafiado y numeración individual. 500 unidades en el mundo.",
			Price:            150000,
			Images:           []string{"/images/products/spray-coleccion-aniversario.jpg"},
			CategoryID:       "coleccionables", SubcategoryID: "ediciones-limitadas", Stock: 2, SKU: "COL-EDI-001",
			Tags: []string{"coleccionable", "spray", "edicion-limitada"}, Brand: "Montana Colors",
			Featured: true, CreatedAt: day(2024, time.June, 6), UpdatedAt: day(2024, time.June, 6),
		},
		{
			ID: "print-firmado-artista", Name: "Print Firmado Serie Trenes", Slug: "print-firmado-artista",
			ShortDescription: "Giclée firmado y numerado a mano",
			Description:      "Impresión giclée de 50x70cm de la serie Trenes, firmada y numerada a mano por el artista. Tirada de 50 ejemplares.",
			Price:            240000, CompareAtPrice: 260000,
			Images:     []string{"/images/products/print-firmado-artista.jpg"},
			CategoryID: "coleccionables", SubcategoryID: "arte-exclusivo", Stock: 5, SKU: "COL-ART-001",
			Tags: []string{"coleccionable", "arte", "edicion-limitada"},
			CreatedAt: day(2024, time.May, 9), UpdatedAt: day(2024, time.May, 9),
		},
	}
}
