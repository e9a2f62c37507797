package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/cobnew/internal/template/model"
)

const fixedExecutable = `      ******************************************************************
      * author:
      * date:
      * purpose:
      * tectonics: cobc
      ******************************************************************
       identification division.
       program-id. your-program-name.
       data division.
       file section.
       working-storage section.
       procedure division.
       main-procedure.
            display "hello world"
            stop run.
       end program your-program-name.

`

const fixedModule = `      ******************************************************************
      * author:
      * date:
      * purpose:
      * tectonics: cobc
      ******************************************************************
       identification division.
       program-id. your-program.
       data division.
       working-storage section.
       linkage section.
       01 parametres.
           02 pa-return-code pic 99 value 0.
       procedure division using parametres.
       main-procedure.
           display "hello world"
           move 0 to pa-return-code
           stop run.
       end program your-program.
`

const freeExecutable = `*>****************************************************************
*> author:
*> date:
*> purpose:
*> tectonics: cobc
*>****************************************************************
identification division.
program-id. your-program-name.
data division.
file section.
working-storage section.
procedure division.
main-procedure.
    display "hello world"
    stop run.
end program your-program-name.
`

const freeModule = `*>****************************************************************
*> author:
*> date:
*> purpose:
*> tectonics: cobc
*>*****************************************************************
identification division.
program-id. your-program.
data division.
working-storage section.
linkage section.
01 parametres.
   02 pa-return-code pic 99 value 0.
procedure division using parametres.
main-procedure.
   display "hello world"
   move 0 to pa-return-code
   stop run.
end program your-program.
`

func TestText_AllCombinations(t *testing.T) {
	tests := []struct {
		name string
		kind model.Kind
		free bool
		want string
	}{
		{"executable fixed", model.KindExecutable, false, fixedExecutable},
		{"module fixed", model.KindModule, false, fixedModule},
		{"empty fixed", model.KindEmpty, false, ""},
		{"executable free", model.KindExecutable, true, freeExecutable},
		{"module free", model.KindModule, true, freeModule},
		{"empty free", model.KindEmpty, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.kind, tt.free)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_UnknownKind(t *testing.T) {
	_, err := Lookup(model.Kind(42), model.FormatFixed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template kind")
}

func TestLookup_CarriesKindAndFormat(t *testing.T) {
	tmpl, err := Lookup(model.KindModule, model.FormatFree)
	require.NoError(t, err)
	assert.Equal(t, model.KindModule, tmpl.Kind)
	assert.Equal(t, model.FormatFree, tmpl.Format)
	assert.Equal(t, "module/free", tmpl.Name())
}

func TestAll(t *testing.T) {
	templates, err := All()
	require.NoError(t, err)
	require.Len(t, templates, 6)

	assert.Equal(t, "executable/fixed", templates[0].Name())
	assert.Equal(t, "empty/free", templates[5].Name())
	for _, tmpl := range templates {
		if tmpl.Kind == model.KindEmpty {
			assert.True(t, tmpl.IsEmpty(), "%s should be empty", tmpl.Name())
		} else {
			assert.False(t, tmpl.IsEmpty(), "%s should have a body", tmpl.Name())
		}
	}
}
