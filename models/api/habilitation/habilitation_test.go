package habapimodels

import (
	"testing"
	"time"

	dbmodels "habilitation-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestEventConvert(t *testing.T) {
	// Stage porte le libellé d'étape du journal, NewStatus le statut
	// résultant, les deux en clair.
	rec := dbmodels.HabilitationEvent{
		HabilitationID: "h1",
		Stage:          "n1",
		Action:         "approuver",
		ActorUserID:    "u-n1",
		ActorUser:      &dbmodels.User{Name: "Moussa Koné"},
		Comment:        "accord",
		NewStatus:      "pending_n2",
	}
	rec.CreatedAt = time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	view := EventConvert(rec)
	require.Equal(t, "n1", view.Stage)
	require.Equal(t, "approuver", view.Action)
	require.Equal(t, "pending_n2", view.NewStatus)
	require.Equal(t, "Moussa Koné", view.ActorName)
	require.Equal(t, rec.CreatedAt, view.Date)
}
