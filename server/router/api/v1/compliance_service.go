package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apierr "github.com/nahilou/caverne/server/internal/errors"
)

func (s *APIV1Service) registerComplianceRoutes(g *echo.Group) {
	g.GET("/compliance/privacy-policy", s.getPrivacyPolicy)
	g.GET("/compliance/terms-of-service", s.getTermsOfService)
	g.GET("/compliance/parental-consent", s.getParentalConsentForm)
	g.POST("/compliance/parental-consent", s.submitParentalConsent)
	g.POST("/compliance/accessibility-check", s.checkAccessibility)
}

type documentSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type childFriendlyVersion struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *APIV1Service) getPrivacyPolicy(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"title":       "Politique de confidentialité - La caverne de Nahilou",
		"lastUpdated": time.Now().Format("2006-01-02"),
		"sections": []documentSection{
			{
				Title:   "Qui sommes-nous ?",
				Content: "La caverne de Nahilou est un site web éducatif et ludique pour les enfants de 7 à 12 ans. Notre mission est de proposer un environnement sûr et amusant pour apprendre et jouer.",
			},
			{
				Title:   "Quelles informations collectons-nous ?",
				Content: "Nous collectons uniquement les informations nécessaires pour faire fonctionner le site : prénom, âge, et les activités réalisées sur le site. Nous ne demandons jamais le nom de famille, l'adresse, le numéro de téléphone ou d'autres informations personnelles sensibles.",
			},
			{
				Title:   "Comment utilisons-nous ces informations ?",
				Content: "Nous utilisons ces informations pour personnaliser l'expérience de l'enfant, adapter le contenu à son âge, et permettre aux parents de suivre ses activités. Nous utilisons également ces données pour améliorer notre site.",
			},
			{
				Title:   "Qui a accès à ces informations ?",
				Content: "Seuls les parents ou tuteurs légaux ont accès aux informations de leur enfant via le tableau de bord parental. Nous ne partageons jamais ces informations avec des tiers sans votre consentement explicite.",
			},
			{
				Title:   "Combien de temps conservons-nous ces informations ?",
				Content: "Nous conservons les informations tant que le compte est actif. Les parents peuvent demander la suppression des données à tout moment via le tableau de bord parental.",
			},
			{
				Title:   "Vos droits",
				Content: "Conformément au RGPD, vous avez le droit d'accéder, de rectifier, de supprimer vos données ou de limiter leur traitement. Pour exercer ces droits, contactez-nous via le formulaire de contact.",
			},
			{
				Title:   "Cookies et technologies similaires",
				Content: "Nous utilisons des cookies uniquement pour maintenir votre session et vos préférences. Nous n'utilisons pas de cookies à des fins publicitaires ou de suivi.",
			},
			{
				Title:   "Contact",
				Content: "Pour toute question concernant notre politique de confidentialité, vous pouvez nous contacter à privacy@lacaverne-nahilou.com",
			},
		},
		"childFriendlyVersion": childFriendlyVersion{
			Title:   "Comment nous protégeons tes informations",
			Content: "Salut ! Chez La caverne de Nahilou, nous prenons soin de tes informations comme un trésor précieux. Nous demandons juste ton prénom et ton âge pour te proposer des jeux et des histoires qui te plairont. Seuls tes parents peuvent voir ce que tu fais sur le site. Nous ne partageons jamais tes informations avec d'autres personnes. Si tu as des questions, demande à tes parents de nous contacter !",
		},
	})
}

func (s *APIV1Service) getTermsOfService(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"title":       "Conditions d'utilisation - La caverne de Nahilou",
		"lastUpdated": time.Now().Format("2006-01-02"),
		"sections": []documentSection{
			{
				Title:   "Bienvenue !",
				Content: "Bienvenue sur La caverne de Nahilou ! En utilisant notre site, tu acceptes ces règles qui sont là pour que tout le monde s'amuse bien et en sécurité.",
			},
			{
				Title:   "Qui peut utiliser le site ?",
				Content: "La caverne de Nahilou est conçue pour les enfants de 7 à 12 ans. Si tu as moins de 7 ans, demande à un adulte de t'aider.",
			},
			{
				Title:   "Règles de bonne conduite",
				Content: "Sois gentil et respectueux envers les autres. N'utilise pas de gros mots ou de messages méchants. Ne partage pas d'informations personnelles comme ton nom de famille, ton adresse ou ton école.",
			},
			{
				Title:   "Contenu du site",
				Content: "Tous les jeux, histoires et activités sur le site appartiennent à La caverne de Nahilou. Tu peux les utiliser pour t'amuser, mais pas les copier pour les utiliser ailleurs sans notre permission.",
			},
			{
				Title:   "Rôle des parents",
				Content: "Les parents ou tuteurs sont responsables de surveiller l'utilisation du site par leurs enfants. Ils peuvent définir des limites de temps et des permissions via le tableau de bord parental.",
			},
			{
				Title:   "Modifications des conditions",
				Content: "Nous pouvons modifier ces conditions à tout moment. Les modifications seront affichées sur cette page.",
			},
		},
		"childFriendlyVersion": childFriendlyVersion{
			Title:   "Les règles du jeu",
			Content: "Bienvenue dans La caverne de Nahilou ! Voici quelques règles simples pour que tout le monde s'amuse bien :\n1. Sois gentil avec les autres\n2. Ne partage pas ton nom de famille, ton adresse ou le nom de ton école\n3. Demande la permission à tes parents avant d'utiliser le site\n4. Amuse-toi bien et apprends plein de choses !",
		},
	})
}

type consentFormField struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Required bool   `json:"required"`
}

func (s *APIV1Service) getParentalConsentForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"title": "Formulaire de consentement parental - La caverne de Nahilou",
		"sections": []documentSection{
			{
				Title:   "Consentement parental",
				Content: "En tant que parent ou tuteur légal, je donne mon consentement pour que mon enfant utilise le site La caverne de Nahilou. Je comprends que des informations limitées seront collectées pour personnaliser son expérience, et que je peux accéder, modifier ou supprimer ces informations à tout moment via le tableau de bord parental.",
			},
			{
				Title:   "Informations collectées",
				Content: "Je comprends que le site collectera le prénom de mon enfant, son âge, et des informations sur ses activités sur le site (histoires lues, jeux joués, scores obtenus, temps passé).",
			},
			{
				Title:   "Utilisation de l'IA",
				Content: "Je comprends que le site utilise l'intelligence artificielle pour générer du contenu adapté à l'âge de mon enfant, et que ce contenu est filtré pour éliminer tout élément inapproprié.",
			},
			{
				Title:   "Contrôle parental",
				Content: "Je comprends que j'ai accès à un tableau de bord parental qui me permet de définir des limites de temps, de voir les activités de mon enfant, et de gérer ses permissions.",
			},
		},
		"formFields": []consentFormField{
			{ID: "parent_name", Label: "Nom du parent/tuteur", Type: "text", Required: true},
			{ID: "parent_email", Label: "Email du parent/tuteur", Type: "email", Required: true},
			{ID: "child_name", Label: "Prénom de l'enfant", Type: "text", Required: true},
			{ID: "child_age", Label: "Âge de l'enfant", Type: "number", Min: 7, Max: 12, Required: true},
			{ID: "consent", Label: "Je donne mon consentement pour que mon enfant utilise La caverne de Nahilou", Type: "checkbox", Required: true},
		},
	})
}

type parentalConsentRequest struct {
	ParentName  string `json:"parent_name"`
	ParentEmail string `json:"parent_email"`
	ChildName   string `json:"child_name"`
	ChildAge    int    `json:"child_age"`
	Consent     bool   `json:"consent"`
}

func (s *APIV1Service) submitParentalConsent(c echo.Context) error {
	var req parentalConsentRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.ParentName == "" || req.ParentEmail == "" || req.ChildName == "" || req.ChildAge == 0 || !req.Consent {
		return writeError(c, invalidArgument(
			"Informations manquantes",
			"Tous les champs du formulaire sont requis.",
		))
	}
	if req.ChildAge < 7 || req.ChildAge > 12 {
		return writeError(c, invalidArgument(
			"Âge non supporté",
			"Ce site est conçu pour les enfants de 7 à 12 ans.",
		))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":  "Consentement parental enregistré avec succès",
		"childId":  "child_" + uuid.NewString(),
		"parentId": "parent_" + uuid.NewString(),
	})
}

type accessibilityCheckRequest struct {
	HTML string `json:"html"`
}

type accessibilityIssue struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// checkAccessibility runs a static heuristic scan over the submitted
// HTML. It is not a full audit; it only flags the most common problems
// of pages aimed at young readers.
func (s *APIV1Service) checkAccessibility(c echo.Context) error {
	var req accessibilityCheckRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apierr.InvalidArgument("Requête invalide"))
	}
	if req.HTML == "" {
		return writeError(c, invalidArgument(
			"Contenu HTML manquant",
			"Le contenu HTML à vérifier est requis.",
		))
	}

	score, issues := scanAccessibility(req.HTML)

	return c.JSON(http.StatusOK, map[string]any{
		"score":  score,
		"issues": issues,
		"recommendations": []string{
			"Utiliser des textes suffisamment grands (minimum 16px)",
			"Assurer un contraste élevé entre le texte et l'arrière-plan",
			"Fournir des alternatives textuelles pour les images",
			"Utiliser des boutons suffisamment grands pour les interactions tactiles",
			"Structurer le contenu avec des titres hiérarchiques appropriés",
		},
	})
}

func scanAccessibility(html string) (int, []accessibilityIssue) {
	lower := strings.ToLower(html)
	score := 100
	issues := []accessibilityIssue{}

	if strings.Contains(lower, "<img") && !strings.Contains(lower, "alt=") {
		score -= 15
		issues = append(issues, accessibilityIssue{
			Type:        "alt-text",
			Description: "Certaines images n'ont pas de texte alternatif",
			Severity:    "error",
		})
	}
	if strings.Contains(lower, "<html") && !strings.Contains(lower, "lang=") {
		score -= 5
		issues = append(issues, accessibilityIssue{
			Type:        "language",
			Description: "La langue de la page n'est pas déclarée",
			Severity:    "warning",
		})
	}
	if !strings.Contains(lower, "<h1") {
		score -= 10
		issues = append(issues, accessibilityIssue{
			Type:        "structure",
			Description: "La page n'a pas de titre principal (h1)",
			Severity:    "warning",
		})
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}
