package orggraph

import (
	"testing"

	dbmodels "habilitation-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeProfileSource struct {
	profiles map[string]*dbmodels.Profile
}

func (s fakeProfileSource) GetByID(id string) (*dbmodels.Profile, error) {
	return s.profiles[id], nil
}

func (s fakeProfileSource) ListByManager(managerID string) ([]dbmodels.Profile, error) {
	result := []dbmodels.Profile{}
	for _, rec := range s.profiles {
		if rec.ManagerID != nil && *rec.ManagerID == managerID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func newTestProfile(id string, managerID string) *dbmodels.Profile {
	rec := &dbmodels.Profile{}
	rec.ID = id
	if managerID != "" {
		rec.ManagerID = &managerID
	}
	return rec
}

func TestOrgGraph(t *testing.T) {
	source := fakeProfileSource{profiles: map[string]*dbmodels.Profile{
		"agent":     newTestProfile("agent", "chef"),
		"chef":      newTestProfile("chef", "directeur"),
		"directeur": newTestProfile("directeur", ""),
		"orphelin":  newTestProfile("orphelin", ""),
		"narcisse":  newTestProfile("narcisse", "narcisse"),
		"ping":      newTestProfile("ping", "pong"),
		"pong":      newTestProfile("pong", "ping"),
	}}
	graph := NewInstance(source)

	t.Run(`manager resolution`, func(t *testing.T) {
		n1, err := graph.ManagerOf("agent")
		require.Nil(t, err)
		require.NotNil(t, n1)
		require.Equal(t, "chef", n1.ID)

		n1, err = graph.ManagerOf("orphelin")
		require.Nil(t, err)
		require.Nil(t, n1)

		// auto-référence ignorée
		n1, err = graph.ManagerOf("narcisse")
		require.Nil(t, err)
		require.Nil(t, n1)
	})

	t.Run(`skip manager resolution`, func(t *testing.T) {
		n2, err := graph.SkipManagerOf("agent")
		require.Nil(t, err)
		require.NotNil(t, n2)
		require.Equal(t, "directeur", n2.ID)

		// la chaîne s'arrête au directeur
		n2, err = graph.SkipManagerOf("chef")
		require.Nil(t, err)
		require.Nil(t, n2)

		// cycle à deux, le N+2 retomberait sur le profil de départ
		n2, err = graph.SkipManagerOf("ping")
		require.Nil(t, err)
		require.Nil(t, n2)
	})

	t.Run(`direct reports`, func(t *testing.T) {
		reports, err := graph.DirectReports("chef")
		require.Nil(t, err)
		require.Len(t, reports, 1)
		require.Equal(t, "agent", reports[0].ID)
	})

	t.Run(`is manager of`, func(t *testing.T) {
		ok, err := graph.IsManagerOf("chef", "agent")
		require.Nil(t, err)
		require.True(t, ok)

		ok, err = graph.IsManagerOf("directeur", "agent")
		require.Nil(t, err)
		require.False(t, ok)
	})
}
