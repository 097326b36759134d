package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole("editor")
	require.NoError(t, err)
	assert.Equal(t, RoleEditor, role)

	_, err = ParseRole("superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"Relatorios", "Prestacao de contas", "Documentos"} {
		cat, err := ParseCategory(valid)
		require.NoError(t, err)
		assert.Equal(t, Category(valid), cat)
	}

	// Values are case sensitive and accent free by contract
	_, err := ParseCategory("relatorios")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseCategory("Relatórios")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"ativo", "inativo", "arquivado"} {
		st, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), st)
	}

	_, err := ParseStatus("deletado")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
