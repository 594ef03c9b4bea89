package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BuiltinClasses(t *testing.T) {
	c := Default()

	classes := c.Classes()
	require.Len(t, classes, 3)
	assert.Equal(t, "Lobisomem", classes[0].ID)
	assert.Equal(t, "Vampiro", classes[1].ID)
	assert.Equal(t, "Bruxa", classes[2].ID)

	assert.Equal(t, 70, classes[0].MaxHP)
	assert.Equal(t, 60, classes[1].MaxHP)
	assert.Equal(t, 50, classes[2].MaxHP)
	_, ok := c.Class("Paladino")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		classID string
		index   int
		want    string
		kind    AbilityKind
		ok      bool
	}{
		{name: "first ability", classID: "Lobisomem", index: 1, want: "Ataque Selvagem", kind: Attack, ok: true},
		{name: "last ability", classID: "Bruxa", index: 5, want: "Espinho Venenoso", kind: Attack, ok: true},
		{name: "heal", classID: "Vampiro", index: 5, want: "Neblina Sombria", kind: Heal, ok: true},
		{name: "zero index", classID: "Lobisomem", index: 0},
		{name: "index past end", classID: "Lobisomem", index: 6},
		{name: "unassigned class", classID: "", index: 1},
		{name: "unknown class", classID: "Paladino", index: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ability, ok := c.Lookup(tt.classID, tt.index)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, ability.Name)
				assert.Equal(t, tt.kind, ability.Kind)
			}
		})
	}
}

func TestBuffEffectMapping(t *testing.T) {
	c := Default()

	cases := map[string]struct {
		classID string
		index   int
		effect  EffectKind
	}{
		"Uivo Assustador": {"Lobisomem", 4, AbsorbAndRelease},
		"Suga Vida":       {"Vampiro", 1, LifeStealOnHit},
		"Encanto":         {"Vampiro", 3, ReduceIncomingDamage},
		"Maldição":        {"Bruxa", 3, ReflectDamage},
	}
	for name, tc := range cases {
		ability, ok := c.Lookup(tc.classID, tc.index)
		require.True(t, ok, name)
		assert.Equal(t, name, ability.Name)
		assert.Equal(t, tc.effect, ability.Effect, name)
	}
}

func TestParse_BuffWithoutEffectIsFlavor(t *testing.T) {
	doc := []byte(`
classes:
  - id: Bardo
    emoji: "🎻"
    max_hp: 40
    abilities:
      - { name: Canção, kind: buff, value: 0 }
      - { name: Golpe, kind: attack, value: 4 }
      - { name: Golpe Duplo, kind: attack, value: 5 }
      - { name: Descanso, kind: heal, value: 3 }
      - { name: Grito, kind: attack, value: 2 }
`)
	c, err := Parse(doc)
	require.NoError(t, err)

	ability, ok := c.Lookup("Bardo", 1)
	require.True(t, ok)
	assert.Equal(t, Flavor, ability.Effect)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: `classes: []`},
		{name: "not yaml", doc: `classes: [`},
		{name: "missing id", doc: `
classes:
  - max_hp: 10
    abilities: []
`},
		{name: "wrong ability count", doc: `
classes:
  - id: A
    max_hp: 10
    abilities:
      - { name: x, kind: attack, value: 1 }
`},
		{name: "non positive hp", doc: `
classes:
  - id: A
    max_hp: 0
    abilities: []
`},
		{name: "unknown kind", doc: `
classes:
  - id: A
    max_hp: 10
    abilities:
      - { name: a, kind: dance, value: 1 }
      - { name: b, kind: attack, value: 1 }
      - { name: c, kind: attack, value: 1 }
      - { name: d, kind: attack, value: 1 }
      - { name: e, kind: attack, value: 1 }
`},
		{name: "unknown effect", doc: `
classes:
  - id: A
    max_hp: 10
    abilities:
      - { name: a, kind: buff, value: 0, effect: disable }
      - { name: b, kind: attack, value: 1 }
      - { name: c, kind: attack, value: 1 }
      - { name: d, kind: attack, value: 1 }
      - { name: e, kind: attack, value: 1 }
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestMarshal_RoundTripsBuiltin(t *testing.T) {
	out, err := Default().Marshal()
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, Default().Classes(), again.Classes())
}
