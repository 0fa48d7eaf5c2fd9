package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

type order struct {
	Service string    `json:"service" validate:"oneof=standard express"`
	Items   []int     `json:"items" validate:"min=1"`
	Sender  contact   `json:"sender"`
	Skip    string    `json:"-" validate:"required"`
	Extra   []contact `json:"extra" validate:"dive"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	err := v.Struct(order{
		Service: "overnight",
		Sender:  contact{Email: "not-an-email"},
		Skip:    "x",
		Extra:   []contact{{Name: "ok"}, {}},
	})
	require.Error(t, err)

	verr, ok := AsError(err)
	require.True(t, ok)

	byField := make(map[string]FieldError)
	for _, f := range verr.Fields {
		byField[f.Field] = f
	}

	assert.Equal(t, "oneof", byField["service"].Tag)
	assert.Equal(t, "items must contain at least 1 item(s)", byField["items"].Message)
	assert.Equal(t, "sender.name is required", byField["sender.name"].Message)
	assert.Equal(t, "email", byField["sender.email"].Tag)
	assert.Equal(t, "required", byField["extra[1].name"].Tag)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidator_StructValid(t *testing.T) {
	err := New().Struct(order{Service: "express", Items: []int{1}, Sender: contact{Name: "a"}, Skip: "x"})
	assert.NoError(t, err)
}

func TestValidator_Var(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("email", "ops@example.com", "required,email"))

	err := v.Var("email", "nope", "required,email")
	verr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "email must be a valid email address", verr.Fields[0].Message)
}
