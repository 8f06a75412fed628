package roleauthority

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLooksLikeIT(t *testing.T) {
	cases := []struct {
		name        string
		fonction    string
		departement string
		expected    bool
	}{
		{name: "departement informatique", fonction: "Technicien", departement: "Direction Informatique", expected: true},
		{name: "fonction support technique", fonction: "Support Technique", departement: "Exploitation", expected: true},
		{name: "sigle IT isole", fonction: "Ingénieur IT", departement: "", expected: true},
		{name: "sigle IT avec tiret", fonction: "", departement: "Support-IT", expected: true},
		{name: "casse ignoree", fonction: "responsable it", departement: "", expected: true},
		{name: "securite ne matche pas it", fonction: "Responsable Sécurité", departement: "Securite", expected: false},
		{name: "metier bancaire", fonction: "Chargé de clientèle", departement: "Agence Centre", expected: false},
		{name: "vide", fonction: "", departement: "", expected: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, LooksLikeIT(tc.fonction, tc.departement))
		})
	}
}
