package policy

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

type owned struct{ owner uuid.UUID }

func (o owned) OwnerID() uuid.UUID { return o.owner }

func TestIsAuthor(t *testing.T) {
	t.Parallel()

	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())

	assert.True(t, IsAuthor(alice, owned{owner: alice}))
	assert.False(t, IsAuthor(bob, owned{owner: alice}))
	assert.False(t, IsAuthor(uuid.Nil, owned{owner: alice}), "anonymous never owns anything")
	assert.False(t, IsAuthor(uuid.Nil, owned{owner: uuid.Nil}))
}
