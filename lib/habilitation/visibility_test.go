package habilitation

import (
	"testing"

	"habilitation-backend/models"
	habapimodels "habilitation-backend/models/api/habilitation"
	dbmodels "habilitation-backend/models/db"

	"github.com/stretchr/testify/require"
)

func newProfile(id string, managerID *string) *dbmodels.Profile {
	profile := &dbmodels.Profile{ManagerID: managerID}
	profile.ID = id
	return profile
}

func TestCanSee(t *testing.T) {
	beneficiary := newProfile("p-ben", strPtr("p-n1"))
	beneficiary.Manager = newProfile("p-n1", strPtr("p-n2"))
	requester := newProfile("p-req", strPtr("p-mgr"))

	rec := dbmodels.Habilitation{
		RequesterProfileID:   "p-req",
		Requester:            requester,
		BeneficiaryProfileID: "p-ben",
		Beneficiary:          beneficiary,
		Status:               models.HabStatusPendingN1,
	}
	rec.ID = "h1"

	t.Run(`admin sees everything`, func(t *testing.T) {
		require.True(t, CanSee(habapimodels.ViewerScope{IsAdmin: true}, rec))
	})

	t.Run(`no role sees nothing`, func(t *testing.T) {
		require.False(t, CanSee(habapimodels.ViewerScope{UserID: "u-x", ProfileID: "p-x"}, rec))
	})

	t.Run(`rh sees own requests only`, func(t *testing.T) {
		require.True(t, CanSee(habapimodels.ViewerScope{IsRh: true, ProfileID: "p-req"}, rec))
		require.True(t, CanSee(habapimodels.ViewerScope{IsRh: true, ProfileID: "p-ben"}, rec))
		require.False(t, CanSee(habapimodels.ViewerScope{IsRh: true, ProfileID: "p-x"}, rec))
	})

	t.Run(`metier sees direct reports`, func(t *testing.T) {
		// manager du bénéficiaire
		require.True(t, CanSee(habapimodels.ViewerScope{IsMetier: true, ProfileID: "p-n1"}, rec))
		// manager du demandeur
		require.True(t, CanSee(habapimodels.ViewerScope{IsMetier: true, ProfileID: "p-mgr"}, rec))
		require.False(t, CanSee(habapimodels.ViewerScope{IsMetier: true, ProfileID: "p-x"}, rec))
	})

	t.Run(`metier sees pending n2 as skip manager`, func(t *testing.T) {
		pendingN2 := rec
		pendingN2.Status = models.HabStatusPendingN2
		require.True(t, CanSee(habapimodels.ViewerScope{IsMetier: true, ProfileID: "p-n2"}, pendingN2))
		// pas N+2 de la chaîne du bénéficiaire
		require.False(t, CanSee(habapimodels.ViewerScope{IsMetier: true, ProfileID: "p-x"}, pendingN2))
		// hors attente N+2, le N+2 ne voit plus la demande
		require.False(t, CanSee(habapimodels.ViewerScope{IsMetier: true, ProfileID: "p-n2"}, rec))
	})

	t.Run(`two node management cycle is ignored`, func(t *testing.T) {
		// le manager du manager pointe sur le manager lui-même
		selfManaged := newProfile("p-ben", strPtr("p-n1"))
		selfManaged.Manager = newProfile("p-n1", strPtr("p-n1"))
		require.False(t, isSkipReport(selfManaged, "p-n1"))

		// cycle à deux entre le profil et son manager
		looped := newProfile("p-ben", strPtr("p-n1"))
		looped.Manager = newProfile("p-n1", strPtr("p-ben"))
		require.False(t, isSkipReport(looped, "p-ben"))

		// chaîne saine
		require.True(t, isSkipReport(beneficiary, "p-n2"))
	})

	t.Run(`routing by requester switches the chain`, func(t *testing.T) {
		require.True(t, CanSee(habapimodels.ViewerScope{IsMetier: true, ProfileID: "p-mgr", RouteByRequester: true}, rec))
	})

	t.Run(`metier keeps past validations visible`, func(t *testing.T) {
		validated := rec
		validated.Status = models.HabStatusApproved
		validated.ValidatorN1ID = strPtr("u-n1")
		require.True(t, CanSee(habapimodels.ViewerScope{IsMetier: true, UserID: "u-n1", ProfileID: "p-other"}, validated))
	})

	t.Run(`control sees its queue and its history`, func(t *testing.T) {
		require.False(t, CanSee(habapimodels.ViewerScope{IsControl: true}, rec))

		pendingControl := rec
		pendingControl.Status = models.HabStatusPendingControl
		require.True(t, CanSee(habapimodels.ViewerScope{IsControl: true}, pendingControl))

		controlled := rec
		controlled.Status = models.HabStatusCompleted
		controlled.ValidatorControlID = strPtr("u-ctrl")
		require.True(t, CanSee(habapimodels.ViewerScope{IsControl: true}, controlled))
	})

	t.Run(`executor sees approved and claimed requests`, func(t *testing.T) {
		require.False(t, CanSee(habapimodels.ViewerScope{IsExecutorIT: true}, rec))

		approved := rec
		approved.Status = models.HabStatusApproved
		require.True(t, CanSee(habapimodels.ViewerScope{IsExecutorIT: true}, approved))

		completed := rec
		completed.Status = models.HabStatusCompleted
		completed.ExecutorITID = strPtr("u-it")
		require.True(t, CanSee(habapimodels.ViewerScope{IsExecutorIT: true}, completed))
	})
}
