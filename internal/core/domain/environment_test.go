package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestEnvironmentFromSlice(t *testing.T) {
	env := domain.EnvironmentFromSlice([]string{
		"PATH=/usr/bin",
		"EMPTY=",
		"WITH_EQUALS=a=b",
		"=C:=C:\\",
		"garbage",
	})

	assert.Equal(t, domain.Environment{
		"PATH":        "/usr/bin",
		"EMPTY":       "",
		"WITH_EQUALS": "a=b",
	}, env)
	assert.Equal(t, []string{"EMPTY=", "PATH=/usr/bin", "WITH_EQUALS=a=b"}, env.Slice())
}

func TestEnvironment_Path(t *testing.T) {
	assert.Equal(t, "/bin", domain.Environment{"PATH": "/bin"}.Path())
	assert.Equal(t, `C:\Windows`, domain.Environment{"Path": `C:\Windows`}.Path())
	assert.Empty(t, domain.Environment{}.Path())
}

func TestEnvironment_Merge(t *testing.T) {
	base := domain.Environment{"Path": "old", "HOME": "/home/me"}
	overlay := domain.Environment{"PATH": "new", "INCLUDE": "inc"}

	t.Run("fold case", func(t *testing.T) {
		got := base.Merge(overlay, true)
		assert.Equal(t, domain.Environment{"PATH": "new", "HOME": "/home/me", "INCLUDE": "inc"}, got)
	})

	t.Run("case sensitive", func(t *testing.T) {
		got := base.Merge(overlay, false)
		assert.Equal(t, domain.Environment{"Path": "old", "PATH": "new", "HOME": "/home/me", "INCLUDE": "inc"}, got)
	})

	assert.Equal(t, domain.Environment{"Path": "old", "HOME": "/home/me"}, base, "base must not be modified")
}

func TestEnvironment_Diff(t *testing.T) {
	base := domain.Environment{"Path": "old", "HOME": "/home/me"}
	captured := domain.Environment{"PATH": "new", "HOME": "/home/me", "INCLUDE": "inc"}

	assert.Equal(t, domain.Environment{"PATH": "new", "INCLUDE": "inc"}, captured.Diff(base))
}
