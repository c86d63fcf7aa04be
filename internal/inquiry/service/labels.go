package service

// Label bundles for the three languages the public forms ship in. Every
// other locale falls back to English.

type inquiryLabels struct {
	typeLabels          map[string]string
	confirmationSubject string
	greeting            string
	thanks              string
	received            string
	details             string
	inquiryType         string
	preferredContact    string
	message             string
	closing             string
	team                string
}

type serviceInquiryLabels struct {
	confirmationSubject string
	greeting            string
	thanks              string
	received            string
	freeNote            string
	details             string
	propertyAddress     string
	message             string
	closing             string
	team                string
}

const teamName = "Endless Solutions Kft."

var inquiryBundles = map[string]inquiryLabels{
	"hu": {
		typeLabels: map[string]string{
			"viewing":    "Privát megtekintés",
			"investment": "Befektetési információ",
			"pricing":    "Árazási részletek",
			"agent":      "Ingatlanközvetítő - ügyfél bejelentés",
			"other":      "Egyéb",
		},
		confirmationSubject: "Bem rakpart 26 - Érdeklődését megkaptuk",
		greeting:            "Kedves",
		thanks:              "Köszönjük érdeklődését a Bem rakpart 26-os ingatlannál!",
		received:            "Üzenetét megkaptuk. Csapatunk hamarosan, 24 órán belül felveszi Önnel a kapcsolatot.",
		details:             "Az Ön érdeklődésének részletei",
		inquiryType:         "Érdeklődés típusa",
		preferredContact:    "Preferált kapcsolatfelvétel",
		message:             "Üzenet",
		closing:             "Üdvözlettel",
		team:                teamName,
	},
	"en": {
		typeLabels: map[string]string{
			"viewing":    "Private Viewing",
			"investment": "Investment Information",
			"pricing":    "Pricing Details",
			"agent":      "Real Estate Agent - Client Submission",
			"other":      "Other",
		},
		confirmationSubject: "Bem rakpart 26 - Inquiry Received",
		greeting:            "Dear",
		thanks:              "Thank you for your interest in Bem rakpart 26!",
		received:            "We have received your inquiry. Our team will contact you within 24 hours.",
		details:             "Your inquiry details",
		inquiryType:         "Inquiry type",
		preferredContact:    "Preferred contact",
		message:             "Message",
		closing:             "Best regards",
		team:                teamName,
	},
	"de": {
		typeLabels: map[string]string{
			"viewing":    "Private Besichtigung",
			"investment": "Investment-Informationen",
			"pricing":    "Preisdetails",
			"agent":      "Immobilienmakler - Kundeneinreichung",
			"other":      "Sonstiges",
		},
		confirmationSubject: "Bem rakpart 26 - Anfrage erhalten",
		greeting:            "Sehr geehrte/r",
		thanks:              "Vielen Dank für Ihr Interesse an Bem rakpart 26!",
		received:            "Wir haben Ihre Anfrage erhalten. Unser Team wird Sie innerhalb von 24 Stunden kontaktieren.",
		details:             "Ihre Anfragedetails",
		inquiryType:         "Art der Anfrage",
		preferredContact:    "Bevorzugter Kontakt",
		message:             "Nachricht",
		closing:             "Mit freundlichen Grüßen",
		team:                teamName,
	},
}

var serviceInquiryBundles = map[string]serviceInquiryLabels{
	"hu": {
		confirmationSubject: "Endless Solutions - Luxus Ingatlan Landing Page Érdeklődés",
		greeting:            "Kedves",
		thanks:              "Köszönjük érdeklődését az Endless Solutions luxus ingatlan landing page szolgáltatása iránt!",
		received:            "Jelentkezését megkaptuk. Csapatunk hamarosan, 48 órán belül felveszi Önnel a kapcsolatot a részletek egyeztetése céljából.",
		freeNote:            "Az első 10 prémium ingatlannak INGYENES szolgáltatást biztosítunk.",
		details:             "A beküldött adatok",
		propertyAddress:     "Ingatlan címe",
		message:             "Üzenet",
		closing:             "Üdvözlettel",
		team:                teamName,
	},
	"en": {
		confirmationSubject: "Endless Solutions - Luxury Property Landing Page Inquiry",
		greeting:            "Dear",
		thanks:              "Thank you for your interest in Endless Solutions' luxury property landing page service!",
		received:            "We have received your application. Our team will contact you within 48 hours to discuss the details.",
		freeNote:            "We're offering FREE service to the first 10 premium properties.",
		details:             "Submitted information",
		propertyAddress:     "Property address",
		message:             "Message",
		closing:             "Best regards",
		team:                teamName,
	},
	"de": {
		confirmationSubject: "Endless Solutions - Luxusimmobilien-Landingpage Anfrage",
		greeting:            "Sehr geehrte/r",
		thanks:              "Vielen Dank für Ihr Interesse am Luxusimmobilien-Landingpage-Service von Endless Solutions!",
		received:            "Wir haben Ihre Bewerbung erhalten. Unser Team wird Sie innerhalb von 48 Stunden kontaktieren, um die Details zu besprechen.",
		freeNote:            "Wir bieten KOSTENLOSEN Service für die ersten 10 Premium-Immobilien an.",
		details:             "Eingereichte Informationen",
		propertyAddress:     "Immobilienadresse",
		message:             "Nachricht",
		closing:             "Mit freundlichen Grüßen",
		team:                teamName,
	},
}

func inquiryLabelsFor(lang string) inquiryLabels {
	if b, ok := inquiryBundles[lang]; ok {
		return b
	}
	return inquiryBundles["en"]
}

func serviceInquiryLabelsFor(lang string) serviceInquiryLabels {
	if b, ok := serviceInquiryBundles[lang]; ok {
		return b
	}
	return serviceInquiryBundles["en"]
}
