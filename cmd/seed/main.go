package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/infras/postgres"
	articleModel "github.com/antoniomp17/WebPsicolog-a/internal/domains/article/model"
	articleRepository "github.com/antoniomp17/WebPsicolog-a/internal/domains/article/repository"
	courseModel "github.com/antoniomp17/WebPsicolog-a/internal/domains/course/model"
	courseRepository "github.com/antoniomp17/WebPsicolog-a/internal/domains/course/repository"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	"github.com/antoniomp17/WebPsicolog-a/shared/logger"
	gModel "github.com/antoniomp17/WebPsicolog-a/shared/model"
	"github.com/antoniomp17/WebPsicolog-a/shared/timezone"
)

const seededBy = "seed"

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx := context.Background()

	ot := otel.New(cfg)
	db := postgres.New(cfg)

	courses := courseRepository.New(db, ot)
	articles := articleRepository.New(db, ot)

	seedCourses(ctx, courses)
	seedArticles(ctx, articles)

	log.Info().Msg("seeding complete")
}

func metadata() gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  seededBy,
		ModifiedBy: seededBy,
	}
}

func seedCourses(ctx context.Context, repo courseRepository.Course) {
	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count courses")
	}

	if count > 0 {
		log.Info().Int("count", count).Msg("courses already seeded, skipping")

		return
	}

	data := []courseModel.Course{
		{
			Title:       "Gestión de la Ansiedad",
			Slug:        "gestion-ansiedad",
			Description: "Aprende técnicas prácticas para manejar la ansiedad y el estrés en tu día a día. Incluye ejercicios de respiración, mindfulness y herramientas cognitivo-conductuales.",
			PriceCents:  12000,
			Duration:    "6 semanas",
			Level:       courseModel.LevelBeginner,
			Image:       "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=600&h=400&fit=crop",
			Featured:    true,
		},
		{
			Title:       "Mindfulness y Bienestar",
			Slug:        "mindfulness-bienestar",
			Description: "Descubre el poder de la atención plena para mejorar tu concentración y bienestar emocional. Aprende a vivir el presente con mayor plenitud.",
			PriceCents:  8000,
			Duration:    "4 semanas",
			Level:       courseModel.LevelAllLevels,
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=600&h=400&fit=crop",
			Featured:    true,
		},
		{
			Title:       "Comunicación Asertiva",
			Slug:        "comunicacion-asertiva",
			Description: "Desarrolla habilidades para comunicarte de forma efectiva y respetuosa en tus relaciones personales y profesionales.",
			PriceCents:  15000,
			Duration:    "8 semanas",
			Level:       courseModel.LevelIntermediate,
			Image:       "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=600&h=400&fit=crop",
		},
		{
			Title:       "Autoestima y Confianza",
			Slug:        "autoestima-confianza",
			Description: "Fortalece tu autoestima y desarrolla una confianza genuina en ti mismo. Aprende a reconocer tu valor y potencial.",
			PriceCents:  11000,
			Duration:    "5 semanas",
			Level:       courseModel.LevelBeginner,
			Image:       "https://images.unsplash.com/photo-1499209974431-9dddcece7f88?w=600&h=400&fit=crop",
		},
		{
			Title:       "Gestión Emocional",
			Slug:        "gestion-emocional",
			Description: "Aprende a identificar, comprender y regular tus emociones de manera saludable. Desarrolla inteligencia emocional.",
			PriceCents:  13000,
			Duration:    "7 semanas",
			Level:       courseModel.LevelIntermediate,
			Image:       "https://images.unsplash.com/photo-1497215842964-222b430dc094?w=600&h=400&fit=crop",
			Featured:    true,
		},
		{
			Title:       "Resiliencia y Crecimiento",
			Slug:        "resiliencia-crecimiento",
			Description: "Desarrolla tu capacidad de adaptación ante las adversidades y aprende a crecer a través de los desafíos.",
			PriceCents:  9500,
			Duration:    "6 semanas",
			Level:       courseModel.LevelAllLevels,
			Image:       "https://images.unsplash.com/photo-1513836279014-a89f7a76ae86?w=600&h=400&fit=crop",
		},
	}

	for i := range data {
		data[i].ID = uuid.NewString()
		data[i].Active = true
		data[i].Metadata = metadata()
	}

	if err := repo.InsertBulk(ctx, data); err != nil {
		log.Fatal().Err(err).Msg("failed to seed courses")
	}

	log.Info().Int("count", len(data)).Msg("courses seeded")
}

func seedArticles(ctx context.Context, repo articleRepository.Article) {
	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count articles")
	}

	if count > 0 {
		log.Info().Int("count", count).Msg("articles already seeded, skipping")

		return
	}

	data := []articleModel.Article{
		{
			Title:   "5 Técnicas de Respiración para Reducir la Ansiedad",
			Slug:    "5-tecnicas-respiracion-ansiedad",
			Excerpt: "Descubre cómo técnicas simples de respiración pueden ayudarte a encontrar calma en momentos de estrés.",
			Content: `<p>La respiración es una herramienta poderosa que siempre llevamos con nosotros. Al tomar control consciente de nuestra respiración, podemos activar el sistema nervioso parasimpático y promover la calma.</p>
<h2>1. Respiración Diafragmática</h2>
<p>Coloca una mano en tu pecho y otra en tu abdomen. Al inhalar, tu abdomen debe expandirse más que tu pecho.</p>
<h2>2. Técnica 4-7-8</h2>
<p>Inhala contando hasta 4, mantén la respiración contando hasta 7, y exhala completamente contando hasta 8.</p>
<h2>3. Respiración Cuadrada</h2>
<p>Inhala durante 4 segundos, mantén durante 4, exhala durante 4, y mantén vacío durante 4. Repite el ciclo.</p>
<h2>4. Respiración Alterna de Fosas Nasales</h2>
<p>Cierra una fosa nasal, inhala por la otra, cambia y exhala por la fosa opuesta.</p>
<h2>5. Respiración Consciente Simple</h2>
<p>Observa tu respiración sin intentar cambiarla. Esta técnica de mindfulness ancla tu atención en el presente.</p>
<p><strong>Consejo:</strong> Practica estas técnicas regularmente, no solo cuando te sientas ansioso.</p>`,
			Author:      "Dra. María González",
			Image:       "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800&h=400&fit=crop",
			PublishedAt: "2024-03-15",
		},
		{
			Title:   "El Poder del Autocuidado en la Salud Mental",
			Slug:    "poder-autocuidado-salud-mental",
			Excerpt: "Por qué dedicar tiempo a ti mismo no es egoísta, sino esencial para tu bienestar emocional.",
			Content: `<p>En nuestra sociedad acelerada, el autocuidado a menudo se percibe como un lujo o incluso como algo egoísta. Sin embargo, cuidar de nuestra salud mental es tan importante como cuidar de nuestra salud física.</p>
<h2>¿Qué es el Autocuidado?</h2>
<p>El autocuidado abarca todas las acciones deliberadas que tomamos para cuidar de nuestra salud física, mental y emocional.</p>
<h2>Dimensiones del Autocuidado</h2>
<ul>
<li><strong>Físico:</strong> Ejercicio, nutrición adecuada, sueño reparador</li>
<li><strong>Emocional:</strong> Reconocer y expresar emociones de manera saludable</li>
<li><strong>Mental:</strong> Estimulación intelectual, aprendizaje continuo</li>
<li><strong>Social:</strong> Mantener relaciones significativas</li>
<li><strong>Espiritual:</strong> Conectar con valores y propósito</li>
</ul>
<p><strong>Recuerda:</strong> No puedes servir desde un vaso vacío. Cuidarte a ti mismo te permite cuidar mejor de los demás.</p>`,
			Author:      "Dra. María González",
			Image:       "https://images.unsplash.com/photo-1499209974431-9dddcece7f88?w=800&h=400&fit=crop",
			PublishedAt: "2024-03-08",
		},
		{
			Title:   "Mindfulness: Vivir en el Presente",
			Slug:    "mindfulness-vivir-presente",
			Excerpt: "Aprende cómo la práctica de mindfulness puede transformar tu experiencia diaria y reducir el estrés.",
			Content: `<p>Mindfulness, o atención plena, es la práctica de estar completamente presente en el momento actual, observando nuestros pensamientos y sensaciones sin juicio.</p>
<h2>Los Fundamentos del Mindfulness</h2>
<p>El mindfulness no se trata de vaciar la mente o detener los pensamientos. Se trata de observarlos sin engancharse en ellos, como nubes pasando en el cielo.</p>
<h2>Beneficios Científicamente Comprobados</h2>
<ul>
<li>Reducción del estrés y la ansiedad</li>
<li>Mejora de la concentración y memoria</li>
<li>Mayor regulación emocional</li>
<li>Mejora en la calidad del sueño</li>
</ul>
<h2>Cómo Empezar</h2>
<p>Comienza con solo 5 minutos al día. Cuando tu mente divague, simplemente nota que ha divagado y vuelve gentilmente a la respiración.</p>`,
			Author:      "Dra. María González",
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=800&h=400&fit=crop",
			PublishedAt: "2024-03-01",
		},
	}

	for i := range data {
		data[i].ID = uuid.NewString()
		data[i].Published = true
		data[i].Metadata = metadata()
	}

	if err := repo.InsertBulk(ctx, data); err != nil {
		log.Fatal().Err(err).Msg("failed to seed articles")
	}

	log.Info().Int("count", len(data)).Msg("articles seeded")
}
