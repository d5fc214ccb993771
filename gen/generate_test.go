package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cohesivestack/valgo"
	"github.com/joshjon/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ids")
	cfg := Config{
		Package: "ids",
		Kinds: []Kind{
			{Prefix: "user"},
			{Prefix: "order_item"},
			{TypeName: "AccountID", Prefix: "acc"},
		},
	}

	files, err := Generate(t.Context(), log.NewLogger(), cfg, dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "user_id.gen.go"),
		filepath.Join(dir, "order_item_id.gen.go"),
		filepath.Join(dir, "account_id.gen.go"),
	}, files)

	for i, file := range files {
		got, err := os.ReadFile(file)
		require.NoError(t, err)

		kind := cfg.Kinds[i]
		if kind.TypeName == "" {
			kind.TypeName, err = TypeNameFromPrefix(kind.Prefix)
			require.NoError(t, err)
		}
		want, err := Render("ids", DefaultModulePath, kind)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}
}

func TestGenerate_duplicatePrefixesAllowed(t *testing.T) {
	cfg := Config{
		Package: "ids",
		Kinds: []Kind{
			{TypeName: "UserID", Prefix: "user"},
			{TypeName: "LegacyUserID", Prefix: "user"},
		},
	}
	files, err := Generate(t.Context(), log.NewLogger(), cfg, t.TempDir())
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestGenerate_invalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{
			name:      "invalid package",
			cfg:       Config{Package: "my-ids", Kinds: []Kind{{Prefix: "user"}}},
			wantField: "package",
		},
		{
			name:      "no kinds",
			cfg:       Config{Package: "ids"},
			wantField: "kinds",
		},
		{
			name:      "invalid type name",
			cfg:       Config{Package: "ids", Kinds: []Kind{{TypeName: "User ID", Prefix: "user"}}},
			wantField: "kinds[0].typeName",
		},
		{
			name: "clashing type names",
			cfg: Config{Package: "ids", Kinds: []Kind{
				{TypeName: "UserID", Prefix: "user"},
				{TypeName: "UserId", Prefix: "usr"},
			}},
			wantField: "kinds[1].typeName",
		},
		{
			name:      "invalid module path",
			cfg:       Config{Package: "ids", ModulePath: `bad "path"`, Kinds: []Kind{{Prefix: "user"}}},
			wantField: "modulePath",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := Generate(t.Context(), log.NewLogger(), tt.cfg, dir)
			require.Error(t, err)

			verr, ok := err.(*valgo.Error)
			require.True(t, ok, "unexpected error: %v", err)
			assert.Contains(t, verr.Errors(), tt.wantField)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestGenerate_underivableTypeName(t *testing.T) {
	_, err := Generate(t.Context(), log.NewLogger(), Config{Package: "ids", Kinds: []Kind{{Prefix: "2fa"}}}, t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "kind 0")
}

func TestGenerate_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := Generate(ctx, log.NewLogger(), Config{Package: "ids", Kinds: []Kind{{Prefix: "user"}}}, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}
