package policy

import (
	"testing"

	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_Table(t *testing.T) {
	e := NewEnforcer(DefaultTable)

	cases := []struct {
		name    string
		entity  Entity
		op      Operation
		wantErr error
		want    Decision
	}{
		{"incident read", EntityIncident, Read(), nil, Decision{Access: Anyone}},
		{"incident insert", EntityIncident, Insert(), nil, Decision{Access: RateLimited, RateLimited: true}},
		{"incident update", EntityIncident, Update(), models.ErrImmutableRecord, Decision{}},
		{"incident delete", EntityIncident, Delete(), models.ErrImmutableRecord, Decision{}},

		{"officer read", EntityOfficer, Read(), nil, Decision{Access: Anyone}},
		{"officer insert", EntityOfficer, Insert(), models.ErrForbidden, Decision{}},
		{"officer update", EntityOfficer, Update(), models.ErrImmutableRecord, Decision{}},
		{"officer delete", EntityOfficer, Delete(), models.ErrImmutableRecord, Decision{}},

		{"sighting read", EntitySighting, Read(), nil, Decision{Access: ActiveOnly, ActiveOnly: true}},
		{"sighting insert", EntitySighting, Insert(), nil, Decision{Access: RateLimited, RateLimited: true}},
		{"sighting update", EntitySighting, Update(), models.ErrImmutableRecord, Decision{}},
		{"sighting confirm", EntitySighting, Vote(models.VoteConfirm), nil, Decision{Access: VoteOnly, RateLimited: true, ActiveOnly: true}},
		{"sighting not there", EntitySighting, Vote(models.VoteNotThere), nil, Decision{Access: VoteOnly, RateLimited: true, ActiveOnly: true}},
		{"sighting delete", EntitySighting, Delete(), models.ErrImmutableRecord, Decision{}},

		{"department read", EntityDepartment, Read(), nil, Decision{Access: Anyone}},
		{"department insert", EntityDepartment, Insert(), models.ErrForbidden, Decision{}},
		{"department update", EntityDepartment, Update(), models.ErrImmutableRecord, Decision{}},
		{"department delete", EntityDepartment, Delete(), models.ErrImmutableRecord, Decision{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Authorize(tc.entity, tc.op)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAuthorize_UnknownEntity(t *testing.T) {
	e := NewEnforcer(DefaultTable)
	_, err := e.Authorize(Entity("user"), Read())
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "update(confirm)", Vote(models.VoteConfirm).String())
	assert.Equal(t, "delete", Delete().String())
}
