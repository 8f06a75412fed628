package pdfexport

import (
	"testing"
	"time"

	"habilitation-backend/models"
	habapimodels "habilitation-backend/models/api/habilitation"

	"github.com/stretchr/testify/require"
)

func TestGenerateHabilitationSheet(t *testing.T) {
	validatedAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	view := habapimodels.HabilitationView{
		ID:              "h1",
		CreationDate:    validatedAt,
		Status:          models.HabStatusCompleted,
		StatusHuman:     models.HabStatusCompleted.ToHuman(),
		RequesterName:   "Awa Diallo",
		BeneficiaryName: "Moussa Traoré",
		RequestType:     models.RequestTypeCreation,
		Applications:    []string{"Amplitude", "Messagerie"},
		RequestReason:   "prise de poste",
		StageN1: habapimodels.StageView{
			ValidatorName: "Chef Agence",
			ValidatedAt:   &validatedAt,
			Comment:       "ok",
		},
	}

	pdfFile, err := GenerateHabilitationSheet(view)
	require.Nil(t, err)
	require.NotEmpty(t, pdfFile)
	// en-tête du format PDF
	require.Equal(t, "%PDF", string(pdfFile[:4]))
}
