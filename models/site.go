package models

// DefaultBookingURL is the external booking widget the calls-to-action open.
const DefaultBookingURL = "https://api.leadconnectorhq.com/widget/booking/hMkdMnrM8W8Oyn24jf2B"

const cdn = "https://res.cloudinary.com/dmkx2uowd"

// DefaultSite returns the landing page content. An empty bookingURL falls back
// to DefaultBookingURL.
func DefaultSite(bookingURL string) Site {
	if bookingURL == "" {
		bookingURL = DefaultBookingURL
	}

	return Site{
		Name:        "LPP Media",
		Title:       "LPP Media | Campañas con influencers para artistas y marcas",
		Description: "Ayudamos a artistas y marcas a salir del estancamiento. Viralizamos tu proyecto usando influencers reales y contenido que convierte.",
		LogoURL:     cdn + "/image/upload/v1763696232/isotipo_media_test_vviwcb.png",
		OGImage:     cdn + "/image/upload/v1763698803/reporte_9_xmbbok.jpg",
		BookingURL:  bookingURL,
		ReportImage: cdn + "/image/upload/v1763698803/reporte_9_xmbbok.jpg",

		Nav: []NavItem{
			{Label: "Inicio", Href: "#hero"},
			{Label: "Servicios", Href: "#servicios"},
			{Label: "Casos de éxito", Href: "#resultados"},
			{Label: "Testimonios", Href: "#testimonios"},
			{Label: "FAQ", Href: "#faq"},
		},

		Hero: Hero{
			Badge:       "Aceptando nuevos clientes",
			Headline:    "Si no estás creciendo, es por falta de",
			Highlight:   "estrategia.",
			Description: "Ayudamos a artistas y marcas a salir del estancamiento. Viralizamos tu proyecto usando influencers reales y contenido que convierte.",
			Benefits: []string{
				"Campañas virales en TikTok e Instagram.",
				"Red de +3000 creadores listos para hablar de ti.",
				"Enfoque en ROI: Visualizaciones, streams, ventas o leads.",
			},
			VideoURL: cdn + "/video/upload/v1763916139/video_tqlnk8.mp4",
		},

		Problem: Narrative{
			Tag:     "El Problema",
			Heading: "Tu música merece ser escuchada… no quedarse estancada.",
			Body: []string{
				"Has invertido en estudios, videos, anuncios y esfuerzo… pero los números no responden.",
				"Mientras otros artistas con menos talento se viralizan, tú sigues subiendo contenido que no despega.",
			},
			Callout: "No es falta de talento. Es falta de estrategia.",
			Lead:    "Problemas que estás viviendo ahora mismo:",
			Points: []string{
				"Vistas congeladas en 200–300 por video sin importar cuánto publiques.",
				"Spotify no recomienda tu música ni te coloca en playlists relevantes.",
				"Tus lanzamientos mueren en 24 horas sin generar tracción ni nuevos oyentes.",
				"Agencias que solo te venden posts, sin sistema, sin estrategia y sin métricas reales.",
			},
		},

		Solution: Narrative{
			Tag:     "La Transformación",
			Heading: "La nueva era: Viralidad Programada",
			Body: []string{
				"En LPP Media no dejamos nada a la suerte. Inyectamos tu música o marca en conversaciones reales a través de cientos de micro-influencers simultáneamente.",
			},
			Points: []string{
				"Alcance masivo en días, no años.",
				"Contenido generado por usuarios (UGC) auténtico.",
				"Efecto 'bola de nieve' en algoritmos.",
				"Comunidad real que interactúa y compra.",
			},
		},

		Services: []Service{
			{
				ID:          1,
				Label:       "Estrategia",
				Title:       "Investigación de Nicho",
				Description: "Analizamos dónde está tu audiencia real para no disparar al aire. Identificamos micro-culturas que conectan con tu sonido.",
				Icon:        "lucide:users",
				Accent:      "violet",
			},
			{
				ID:          2,
				Label:       "Curaduría",
				Title:       "Selección de Influencers",
				Description: "Curaduría manual de creadores que realmente convierten, no solo números. Buscamos engagement real y afinidad de marca.",
				Icon:        "lucide:check-circle-2",
				Accent:      "blue",
			},
			{
				ID:          3,
				Label:       "Contenido",
				Title:       "Creatividad Viral",
				Description: "Guiones y conceptos diseñados para retener la atención en TikTok y Reels. Creamos hooks que detienen el scroll.",
				Icon:        "lucide:play",
				Accent:      "pink",
			},
			{
				ID:          4,
				Label:       "Resultados",
				Title:       "Gestión & Reportes",
				Description: "Nos encargamos de todo el proceso, negociación y pagos. Te entregamos métricas claras de impacto y conversión.",
				Icon:        "lucide:bar-chart-3",
				Accent:      "emerald",
			},
		},

		Stats: []Stat{
			{Value: "+1 Billion", Label: "Vistas en campañas en TikTok", Icon: "tiktok"},
			{Value: "+10,000", Label: "Creadores activos", Icon: "lucide:users"},
		},

		Testimonials: []Testimonial{
			{
				ID:     1,
				Name:   "Carlos R.",
				Role:   "Artista Urbano",
				Quote:  "Llevaba 2 años pegado en los mismos números. Con la campaña de LPP, mi último single explotó en TikTok en 2 semanas.",
				Result: "+1.5M Vistas",
			},
			{
				ID:     2,
				Name:   "BrandX Clothing",
				Role:   "Marca de Ropa Streetwear",
				Quote:  "Nunca habíamos probado influencers. El ROI fue inmediato. Vendimos el stock de la colección en 48 horas.",
				Result: "Sold Out",
			},
			{
				ID:     3,
				Name:   "Sofía M.",
				Role:   "Cantante Pop",
				Quote:  "No es solo que publiquen, es la estrategia detrás. Me sentí acompañada y entendieron mi vibra al 100%.",
				Result: "+20k Seguidores",
			},
		},

		FAQs: []FAQItem{
			{
				Question: "¿Cuál es el presupuesto mínimo para empezar?",
				Answer:   "Trabajamos con presupuestos adaptados a objetivos serios. En la llamada estratégica analizamos tu situación actual para recomendarte la inversión óptima.",
			},
			{
				Question: "¿En cuánto tiempo veo resultados?",
				Answer:   "Nuestras campañas suelen mostrar tracción en los primeros 7-10 días desde el lanzamiento del contenido de los influencers.",
			},
			{
				Question: "¿Trabajan con artistas independientes?",
				Answer:   "Sí, siempre y cuando tengan material de calidad profesional y presupuesto para invertir en su crecimiento.",
			},
			{
				Question: "¿Cómo eligen a los influencers?",
				Answer:   "Usamos herramientas de data para verificar que sus seguidores sean reales y que su audiencia coincida con tu mercado objetivo.",
			},
			{
				Question: "¿Sirve para marcas que nunca han hecho esto?",
				Answer:   "Absolutamente. Es el mejor momento para empezar. Nosotros te guiamos desde cero para que no cometas errores de novato.",
			},
		},

		Socials: []SocialLink{
			{Name: "Instagram", Href: "https://www.instagram.com/lpp.media/", Image: cdn + "/image/upload/v1765390696/Dise%C3%B1o_sin_t%C3%ADtulo_4_o12q0c.png"},
			{Name: "TikTok", Href: "https://www.tiktok.com/@lpp.media", Image: cdn + "/image/upload/v1765390694/Dise%C3%B1o_sin_t%C3%ADtulo_5_vgbrtw.png"},
			{Name: "LinkedIn", Href: "https://www.linkedin.com/company/lpp-media-influence", Image: cdn + "/image/upload/v1765390691/Dise%C3%B1o_sin_t%C3%ADtulo_6_t3kbqo.png"},
		},
	}
}
