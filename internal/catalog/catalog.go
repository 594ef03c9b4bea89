// Package catalog holds the static registry of character classes and their
// abilities. It is loaded once at startup and read-only afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AbilitiesPerClass is the fixed number of abilities every class carries.
const AbilitiesPerClass = 5

// AbilityKind defines what an ability does when resolved
type AbilityKind string

const (
	Attack AbilityKind = "attack"
	Heal   AbilityKind = "heal"
	Buff   AbilityKind = "buff"
)

// EffectKind identifies a status effect mechanic
type EffectKind string

const (
	AbsorbAndRelease     EffectKind = "absorb_and_release"
	ReduceIncomingDamage EffectKind = "reduce_incoming_damage"
	ReflectDamage        EffectKind = "reflect_damage"
	LifeStealOnHit       EffectKind = "life_steal_on_hit"
	Disable              EffectKind = "disable"
	// Flavor is a self-buff with no mechanical effect.
	Flavor EffectKind = "flavor"
)

var buffEffects = map[EffectKind]bool{
	AbsorbAndRelease:     true,
	ReduceIncomingDamage: true,
	ReflectDamage:        true,
	LifeStealOnHit:       true,
	Flavor:               true,
}

// AbilityDefinition is one indexed action of a class
type AbilityDefinition struct {
	Name      string      `yaml:"name" json:"name"`
	Kind      AbilityKind `yaml:"kind" json:"kind"`
	BaseValue int         `yaml:"value" json:"value"`
	// Effect is only meaningful for Buff abilities.
	Effect EffectKind `yaml:"effect,omitempty" json:"effect,omitempty"`
}

// ClassDefinition describes a playable class
type ClassDefinition struct {
	ID        string              `yaml:"id" json:"id"`
	Emoji     string              `yaml:"emoji" json:"emoji"`
	MaxHP     int                 `yaml:"max_hp" json:"maxHp"`
	Abilities []AbilityDefinition `yaml:"abilities" json:"abilities"`
}

type document struct {
	Classes []ClassDefinition `yaml:"classes"`
}

//go:embed classes.yaml
var builtin []byte

// Catalog is an immutable class registry
type Catalog struct {
	order   []string
	classes map[string]ClassDefinition
}

// Default returns the built-in catalog. It panics if the embedded document is
// invalid, which can only happen at development time.
func Default() *Catalog {
	c, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a catalog document. Buff abilities without an
// explicit effect resolve to Flavor here, so lookups never need to fall back.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Classes) == 0 {
		return nil, fmt.Errorf("catalog has no classes")
	}

	c := &Catalog{classes: make(map[string]ClassDefinition, len(doc.Classes))}
	for _, class := range doc.Classes {
		if strings.TrimSpace(class.ID) == "" {
			return nil, fmt.Errorf("class missing id")
		}
		if _, exists := c.classes[class.ID]; exists {
			return nil, fmt.Errorf("duplicate class %q", class.ID)
		}
		if class.MaxHP <= 0 {
			return nil, fmt.Errorf("class %q: max_hp must be positive", class.ID)
		}
		if len(class.Abilities) != AbilitiesPerClass {
			return nil, fmt.Errorf("class %q: expected %d abilities, got %d", class.ID, AbilitiesPerClass, len(class.Abilities))
		}
		for i := range class.Abilities {
			a := &class.Abilities[i]
			switch a.Kind {
			case Attack, Heal:
				if a.Effect != "" {
					return nil, fmt.Errorf("class %q ability %q: effect only allowed on buffs", class.ID, a.Name)
				}
			case Buff:
				if a.Effect == "" {
					a.Effect = Flavor
				}
				if !buffEffects[a.Effect] {
					return nil, fmt.Errorf("class %q ability %q: unknown effect %q", class.ID, a.Name, a.Effect)
				}
			default:
				return nil, fmt.Errorf("class %q ability %q: unknown kind %q", class.ID, a.Name, a.Kind)
			}
			if a.BaseValue < 0 {
				return nil, fmt.Errorf("class %q ability %q: negative value", class.ID, a.Name)
			}
		}
		c.classes[class.ID] = class
		c.order = append(c.order, class.ID)
	}
	return c, nil
}

// Class returns a class definition by id
func (c *Catalog) Class(classID string) (ClassDefinition, bool) {
	class, ok := c.classes[classID]
	return class, ok
}

// Classes returns all classes in document order
func (c *Catalog) Classes() []ClassDefinition {
	out := make([]ClassDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.classes[id])
	}
	return out
}

// Lookup resolves a 1-based ability index for a class.
func (c *Catalog) Lookup(classID string, index int) (AbilityDefinition, bool) {
	class, ok := c.classes[classID]
	if !ok || index < 1 || index > len(class.Abilities) {
		return AbilityDefinition{}, false
	}
	return class.Abilities[index-1], true
}

// Marshal renders the catalog back to YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(document{Classes: c.Classes()})
}
