package landing

// Nav labels, in tab order.
const (
	NavHome    = "Accueil"
	NavOffers  = "Nos offres"
	NavContact = "Contact"
)

// NavLabels lists the navigation bar entries.
var NavLabels = []string{NavHome, NavOffers, NavContact}

const (
	heroTitle     = "SERVICE CORDIALE"
	offersTitle   = "Nos Offres"
	orderLabel    = "Commander"
	contactLabel  = "Nous contacter"
	heroSubtitle1 = "Offrez plus qu'un cadeau, Offrez une émotion."
	heroSubtitle2 = "Service Cordial, l'art de faire plaisir."
)

type heroImage struct {
	alt  string
	tilt int
}

var heroImages = []heroImage{
	{alt: "Cadeau", tilt: -12},
	{alt: "Célébration", tilt: 8},
	{alt: "Moments précieux", tilt: -6},
	{alt: "Joie", tilt: 10},
}

var aboutText = []string{
	"Lorem ipsum dolor sit amet consectetur adipisicing elit. Qui harum sunt, " +
		"dolorem rerum explicabo deleniti asperiores molestias natus eaque temporibus.",
	"Lorem ipsum dolor sit amet consectetur, adipisicing elit. Architecto sit " +
		"obcaecati hic dignissimos, eaque nemo ex tenetur alias placeat aliquid.",
}
