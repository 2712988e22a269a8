package characters

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/signature-weapons/internal/domain/character"
	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
)

// SeedFile is the YAML layout accepted by ImportYAML
type SeedFile struct {
	Characters []*character.Character `yaml:"characters"`
}

// DecodeYAML reads a seed file and fills in derived ability modifiers
func DecodeYAML(r io.Reader) ([]*character.Character, error) {
	var seed SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to decode character seed")
	}

	for i, char := range seed.Characters {
		if char == nil {
			return nil, dnderr.InvalidArgumentf("character %d is empty", i)
		}
		for attr, score := range char.Attributes {
			if score == nil {
				delete(char.Attributes, attr)
				continue
			}
			char.Attributes[attr] = character.NewAbilityScore(score.Score)
		}
	}

	return seed.Characters, nil
}

// ImportYAML upserts every character in the seed into repo and returns how
// many were written.
func ImportYAML(ctx context.Context, repo Repository, r io.Reader) (int, error) {
	chars, err := DecodeYAML(r)
	if err != nil {
		return 0, err
	}

	for i, char := range chars {
		err := repo.Create(ctx, char)
		if dnderr.IsAlreadyExists(err) {
			err = repo.Update(ctx, char)
		}
		if err != nil {
			return i, fmt.Errorf("failed to import character %q: %w", char.ID, err)
		}
	}

	return len(chars), nil
}
