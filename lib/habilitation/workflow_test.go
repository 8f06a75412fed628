package habilitation

import (
	"testing"
	"time"

	"habilitation-backend/models"
	habapimodels "habilitation-backend/models/api/habilitation"
	dbmodels "habilitation-backend/models/db"

	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func validRights() habapimodels.RightsData {
	return habapimodels.RightsData{
		RequestType:   models.RequestTypeCreation,
		Applications:  []string{"Amplitude"},
		RequestReason: "prise de poste",
	}
}

func TestStageOrder(t *testing.T) {
	t.Run(`canonical order`, func(t *testing.T) {
		order := BuildStageOrder(false)
		require.Equal(t, models.HabStatusPendingN2, order.Next(models.HabStatusPendingN1))
		require.Equal(t, models.HabStatusPendingControl, order.Next(models.HabStatusPendingN2))
		require.Equal(t, models.HabStatusApproved, order.Next(models.HabStatusPendingControl))
		require.Equal(t, []models.HabStatus{models.HabStatusPendingN1, models.HabStatusPendingN2}, order.Before(models.HabStatusPendingControl))
	})

	t.Run(`control before n2`, func(t *testing.T) {
		order := BuildStageOrder(true)
		require.Equal(t, models.HabStatusPendingControl, order.Next(models.HabStatusPendingN1))
		require.Equal(t, models.HabStatusPendingN2, order.Next(models.HabStatusPendingControl))
		require.Equal(t, models.HabStatusApproved, order.Next(models.HabStatusPendingN2))
	})
}

func TestApplySubmit(t *testing.T) {
	order := BuildStageOrder(false)
	rec := dbmodels.Habilitation{
		RequesterProfileID:   "p-req",
		BeneficiaryProfileID: "p-ben",
		Status:               models.HabStatusDraft,
	}
	rec.ID = "h1"

	t.Run(`requester submits draft`, func(t *testing.T) {
		actor := Actor{UserID: "u-req", ProfileID: "p-req", Roles: models.NewRoleSet(models.RoleRh)}
		mutation, err := ApplySubmit(rec, order, actor, validRights())
		require.Nil(t, err)
		require.Equal(t, models.HabStatusDraft, mutation.FromStatus)
		require.Equal(t, models.HabStatusPendingN1, mutation.NewStatus)
		require.Equal(t, string(models.HabStatusPendingN1), mutation.UpdMap["status"])
		require.Equal(t, "soumettre", mutation.Event.Action)
		require.Equal(t, StageRights, mutation.Event.Stage)
	})

	t.Run(`beneficiary may submit too`, func(t *testing.T) {
		actor := Actor{UserID: "u-ben", ProfileID: "p-ben", Roles: models.NewRoleSet(models.RoleMetier)}
		_, err := ApplySubmit(rec, order, actor, validRights())
		require.Nil(t, err)
	})

	t.Run(`unrelated actor forbidden`, func(t *testing.T) {
		actor := Actor{UserID: "u-x", ProfileID: "p-x", Roles: models.NewRoleSet(models.RoleMetier)}
		_, err := ApplySubmit(rec, order, actor, validRights())
		require.True(t, models.IsKind(err, models.ErrKindForbidden))
	})

	t.Run(`admin override`, func(t *testing.T) {
		actor := Actor{UserID: "u-adm", ProfileID: "p-x", Roles: models.NewRoleSet(models.RoleAdmin)}
		_, err := ApplySubmit(rec, order, actor, validRights())
		require.Nil(t, err)
	})

	t.Run(`only draft can be submitted`, func(t *testing.T) {
		pending := rec
		pending.Status = models.HabStatusPendingN1
		actor := Actor{UserID: "u-req", ProfileID: "p-req", Roles: models.NewRoleSet(models.RoleRh)}
		_, err := ApplySubmit(pending, order, actor, validRights())
		require.True(t, models.IsKind(err, models.ErrKindStateConflict))
	})

	t.Run(`invalid rights rejected`, func(t *testing.T) {
		actor := Actor{UserID: "u-req", ProfileID: "p-req", Roles: models.NewRoleSet(models.RoleRh)}
		data := validRights()
		data.RequestReason = ""
		_, err := ApplySubmit(rec, order, actor, data)
		require.True(t, models.IsKind(err, models.ErrKindValidation))
	})

	t.Run(`applications list stays mandatory`, func(t *testing.T) {
		actor := Actor{UserID: "u-req", ProfileID: "p-req", Roles: models.NewRoleSet(models.RoleRh)}
		data := validRights()
		data.Applications = nil
		data.OtherApplication = "Appli maison"
		_, err := ApplySubmit(rec, order, actor, data)
		require.True(t, models.IsKind(err, models.ErrKindValidation))
	})

	t.Run(`temporary access needs dates`, func(t *testing.T) {
		actor := Actor{UserID: "u-req", ProfileID: "p-req", Roles: models.NewRoleSet(models.RoleRh)}
		data := validRights()
		data.ValidityPeriod = models.ValidityTemporaire
		_, err := ApplySubmit(rec, order, actor, data)
		require.True(t, models.IsKind(err, models.ErrKindValidation))

		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 6, 0)
		data.StartDate = timePtr(start)
		data.EndDate = timePtr(end)
		_, err = ApplySubmit(rec, order, actor, data)
		require.Nil(t, err)

		data.EndDate = timePtr(start)
		_, err = ApplySubmit(rec, order, actor, data)
		require.True(t, models.IsKind(err, models.ErrKindValidation))
	})
}

func TestApplyDecision(t *testing.T) {
	order := BuildStageOrder(false)
	route := RouteInfo{N1ProfileID: "p-n1", N2ProfileID: "p-n2"}
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	approve := habapimodels.DecisionData{Action: models.HabActionApprove, Comment: "ok", Signature: "sig"}

	newRec := func(status models.HabStatus) dbmodels.Habilitation {
		rec := dbmodels.Habilitation{
			RequesterProfileID:   "p-req",
			BeneficiaryProfileID: "p-ben",
			Status:               status,
		}
		rec.ID = "h1"
		return rec
	}

	t.Run(`full approval chain`, func(t *testing.T) {
		rec := newRec(models.HabStatusPendingN1)

		n1 := Actor{UserID: "u-n1", ProfileID: "p-n1", Roles: models.NewRoleSet(models.RoleMetier)}
		mutation, err := ApplyDecision(rec, order, n1, route, approve, now)
		require.Nil(t, err)
		require.Equal(t, models.HabStatusPendingN2, mutation.NewStatus)
		require.Equal(t, "u-n1", mutation.UpdMap["validator_n1_id"])
		require.Equal(t, StageN1, mutation.Event.Stage)

		rec.Status = models.HabStatusPendingN2
		rec.ValidatorN1ID = strPtr("u-n1")
		rec.ValidatedN1At = timePtr(now)

		n2 := Actor{UserID: "u-n2", ProfileID: "p-n2", Roles: models.NewRoleSet(models.RoleMetier)}
		mutation, err = ApplyDecision(rec, order, n2, route, approve, now)
		require.Nil(t, err)
		require.Equal(t, models.HabStatusPendingControl, mutation.NewStatus)
		require.Equal(t, "u-n2", mutation.UpdMap["validator_n2_id"])

		rec.Status = models.HabStatusPendingControl
		rec.ValidatorN2ID = strPtr("u-n2")
		rec.ValidatedN2At = timePtr(now)

		control := Actor{UserID: "u-ctrl", ProfileID: "p-ctrl", Roles: models.NewRoleSet(models.RoleControle)}
		mutation, err = ApplyDecision(rec, order, control, route, approve, now)
		require.Nil(t, err)
		require.Equal(t, models.HabStatusApproved, mutation.NewStatus)
		require.Equal(t, "u-ctrl", mutation.UpdMap["validator_control_id"])
		require.Equal(t, StageControl, mutation.Event.Stage)
	})

	t.Run(`reject closes the request`, func(t *testing.T) {
		rec := newRec(models.HabStatusPendingN1)
		n1 := Actor{UserID: "u-n1", ProfileID: "p-n1", Roles: models.NewRoleSet(models.RoleMetier)}
		reject := habapimodels.DecisionData{Action: models.HabActionReject, Comment: "droits trop larges"}
		mutation, err := ApplyDecision(rec, order, n1, route, reject, now)
		require.Nil(t, err)
		require.Equal(t, models.HabStatusRejected, mutation.NewStatus)
		require.Equal(t, string(models.HabActionReject), mutation.Event.Action)
	})

	t.Run(`reject requires a comment`, func(t *testing.T) {
		rec := newRec(models.HabStatusPendingN1)
		n1 := Actor{UserID: "u-n1", ProfileID: "p-n1", Roles: models.NewRoleSet(models.RoleMetier)}
		reject := habapimodels.DecisionData{Action: models.HabActionReject}
		_, err := ApplyDecision(rec, order, n1, route, reject, now)
		require.True(t, models.IsKind(err, models.ErrKindValidation))
	})

	t.Run(`only the expected manager may decide`, func(t *testing.T) {
		rec := newRec(models.HabStatusPendingN1)
		other := Actor{UserID: "u-x", ProfileID: "p-x", Roles: models.NewRoleSet(models.RoleMetier)}
		_, err := ApplyDecision(rec, order, other, route, approve, now)
		require.True(t, models.IsKind(err, models.ErrKindForbidden))

		// le N+2 désigné ne peut pas court-circuiter l'étape N+1
		n2 := Actor{UserID: "u-n2", ProfileID: "p-n2", Roles: models.NewRoleSet(models.RoleMetier)}
		_, err = ApplyDecision(rec, order, n2, route, approve, now)
		require.True(t, models.IsKind(err, models.ErrKindForbidden))
	})

	t.Run(`missing manager blocks everyone but admin`, func(t *testing.T) {
		rec := newRec(models.HabStatusPendingN1)
		emptyRoute := RouteInfo{}
		n1 := Actor{UserID: "u-n1", ProfileID: "p-n1", Roles: models.NewRoleSet(models.RoleMetier)}
		_, err := ApplyDecision(rec, order, n1, emptyRoute, approve, now)
		require.True(t, models.IsKind(err, models.ErrKindForbidden))

		admin := Actor{UserID: "u-adm", ProfileID: "p-adm", Roles: models.NewRoleSet(models.RoleAdmin)}
		_, err = ApplyDecision(rec, order, admin, emptyRoute, approve, now)
		require.Nil(t, err)
	})

	t.Run(`control requires prior validations`, func(t *testing.T) {
		rec := newRec(models.HabStatusPendingControl)
		// aucune validation N+1/N+2 acquise
		control := Actor{UserID: "u-ctrl", ProfileID: "p-ctrl", Roles: models.NewRoleSet(models.RoleControle)}
		_, err := ApplyDecision(rec, order, control, route, approve, now)
		require.True(t, models.IsKind(err, models.ErrKindStateConflict))
	})

	t.Run(`terminal statuses are absorbing`, func(t *testing.T) {
		admin := Actor{UserID: "u-adm", ProfileID: "p-adm", Roles: models.NewRoleSet(models.RoleAdmin)}
		for _, status := range []models.HabStatus{models.HabStatusRejected, models.HabStatusCompleted} {
			rec := newRec(status)
			_, err := ApplyDecision(rec, order, admin, route, approve, now)
			require.True(t, models.IsKind(err, models.ErrKindStateConflict), string(status))
		}
	})

	t.Run(`non pending statuses refuse decisions`, func(t *testing.T) {
		admin := Actor{UserID: "u-adm", ProfileID: "p-adm", Roles: models.NewRoleSet(models.RoleAdmin)}
		rec := newRec(models.HabStatusDraft)
		_, err := ApplyDecision(rec, order, admin, route, approve, now)
		require.True(t, models.IsKind(err, models.ErrKindStateConflict))
	})

	t.Run(`alternate order routes control before n2`, func(t *testing.T) {
		altOrder := BuildStageOrder(true)
		rec := newRec(models.HabStatusPendingControl)
		rec.ValidatorN1ID = strPtr("u-n1")
		rec.ValidatedN1At = timePtr(now)
		control := Actor{UserID: "u-ctrl", ProfileID: "p-ctrl", Roles: models.NewRoleSet(models.RoleControle)}
		mutation, err := ApplyDecision(rec, altOrder, control, route, approve, now)
		require.Nil(t, err)
		require.Equal(t, models.HabStatusPendingN2, mutation.NewStatus)
	})
}

func TestApplyClaim(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	rec := dbmodels.Habilitation{Status: models.HabStatusApproved}
	rec.ID = "h1"

	t.Run(`executor claims approved request`, func(t *testing.T) {
		actor := Actor{UserID: "u-it", ProfileID: "p-it", Roles: models.NewRoleSet(models.RoleExecuteurIT)}
		mutation, err := ApplyClaim(rec, actor, true, now)
		require.Nil(t, err)
		require.Equal(t, models.HabStatusInProgress, mutation.NewStatus)
		require.Equal(t, "u-it", mutation.UpdMap["executor_it_id"])
		require.Equal(t, "prendre_en_charge", mutation.Event.Action)
	})

	t.Run(`non executor forbidden`, func(t *testing.T) {
		actor := Actor{UserID: "u-x", ProfileID: "p-x", Roles: models.NewRoleSet(models.RoleMetier)}
		_, err := ApplyClaim(rec, actor, false, now)
		require.True(t, models.IsKind(err, models.ErrKindForbidden))
	})

	t.Run(`admin may claim without IT attachment`, func(t *testing.T) {
		actor := Actor{UserID: "u-adm", ProfileID: "p-adm", Roles: models.NewRoleSet(models.RoleAdmin)}
		_, err := ApplyClaim(rec, actor, false, now)
		require.Nil(t, err)
	})

	t.Run(`only approved requests can be claimed`, func(t *testing.T) {
		pending := rec
		pending.Status = models.HabStatusPendingControl
		actor := Actor{UserID: "u-it", ProfileID: "p-it", Roles: models.NewRoleSet(models.RoleExecuteurIT)}
		_, err := ApplyClaim(pending, actor, true, now)
		require.True(t, models.IsKind(err, models.ErrKindStateConflict))
	})
}

func TestApplyExecute(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	data := habapimodels.ExecuteData{Comment: "droits créés", NotifyRequester: true}

	newRec := func() dbmodels.Habilitation {
		rec := dbmodels.Habilitation{
			Status:       models.HabStatusInProgress,
			ExecutorITID: strPtr("u-it"),
		}
		rec.ID = "h1"
		return rec
	}

	t.Run(`claimer completes the request`, func(t *testing.T) {
		actor := Actor{UserID: "u-it", ProfileID: "p-it", Roles: models.NewRoleSet(models.RoleExecuteurIT)}
		mutation, err := ApplyExecute(newRec(), actor, true, data, now)
		require.Nil(t, err)
		require.Equal(t, models.HabStatusCompleted, mutation.NewStatus)
		require.Equal(t, now, mutation.UpdMap["executed_it_at"])
		require.Equal(t, true, mutation.UpdMap["notify_requester"])
		require.Equal(t, "executer", mutation.Event.Action)
	})

	t.Run(`another executor may complete, actor recorded in the log`, func(t *testing.T) {
		actor := Actor{UserID: "u-other", ProfileID: "p-other", Roles: models.NewRoleSet(models.RoleExecuteurIT)}
		mutation, err := ApplyExecute(newRec(), actor, true, data, now)
		require.Nil(t, err)
		require.Equal(t, models.HabStatusCompleted, mutation.NewStatus)
		require.Equal(t, "u-other", mutation.Event.ActorUserID)
		// la prise en charge initiale n'est pas réécrite
		require.NotContains(t, mutation.UpdMap, "executor_it_id")
	})

	t.Run(`non executor cannot complete`, func(t *testing.T) {
		actor := Actor{UserID: "u-rh", ProfileID: "p-rh", Roles: models.NewRoleSet(models.RoleRh)}
		_, err := ApplyExecute(newRec(), actor, false, data, now)
		require.True(t, models.IsKind(err, models.ErrKindForbidden))
	})

	t.Run(`admin completes and backfills the executor`, func(t *testing.T) {
		rec := newRec()
		rec.ExecutorITID = nil
		actor := Actor{UserID: "u-adm", ProfileID: "p-adm", Roles: models.NewRoleSet(models.RoleAdmin)}
		mutation, err := ApplyExecute(rec, actor, false, data, now)
		require.Nil(t, err)
		require.Equal(t, "u-adm", mutation.UpdMap["executor_it_id"])
	})

	t.Run(`only in progress requests can be completed`, func(t *testing.T) {
		rec := newRec()
		rec.Status = models.HabStatusApproved
		actor := Actor{UserID: "u-it", ProfileID: "p-it", Roles: models.NewRoleSet(models.RoleExecuteurIT)}
		_, err := ApplyExecute(rec, actor, true, data, now)
		require.True(t, models.IsKind(err, models.ErrKindStateConflict))
	})
}
