package service

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/hystats/internal/app/appconfig"
	"exusiai.dev/hystats/internal/model/stats"
	"exusiai.dev/hystats/internal/pkg/hyerr"
	"exusiai.dev/hystats/internal/pkg/unstable"
)

// StdinPath makes Load read the payload from standard input.
const StdinPath = "-"

const propertyPlayer = "player"

// Inspector answers package queries against Hypixel payloads stored on disk.
type Inspector struct {
	Config *appconfig.Config

	stdin io.Reader
}

func NewInspector(conf *appconfig.Config) *Inspector {
	return &Inspector{
		Config: conf,
		stdin:  os.Stdin,
	}
}

// Load reads and parses the payload at path.
func (s *Inspector) Load(ctx context.Context, path string) (unstable.Object, error) {
	var r io.Reader
	if path == StdinPath {
		r = s.stdin
	} else {
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			return unstable.Object{}, hyerr.ErrNotFound.Msg("payload file %q does not exist", path)
		}
		if err != nil {
			return unstable.Object{}, errors.Wrap(err, "failed to open payload")
		}
		defer f.Close()
		r = f
	}

	limit := int64(s.Config.MaxPayloadBytes)
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return unstable.Object{}, errors.Wrap(err, "failed to read payload")
	}
	if int64(len(data)) > limit {
		return unstable.Object{}, hyerr.ErrInvalidPayload.Msg("payload exceeds %d bytes", limit)
	}

	obj, err := unstable.Parse(data)
	if err != nil {
		return unstable.Object{}, errors.WithMessagef(err, "parsing %s", path)
	}

	log.Ctx(ctx).Debug().
		Str("evt.name", "payload.loaded").
		Str("path", path).
		Int("bytes", len(data)).
		Msg("payload loaded")

	return obj, nil
}

// StatsOf locates the stats set of a payload. Both the raw player object and
// the full /player response (which nests it under "player") are accepted.
func (s *Inspector) StatsOf(obj unstable.Object) (stats.Set, error) {
	if obj.HasProperty(propertyPlayer) {
		player, err := obj.ObjectProperty(propertyPlayer)
		if err != nil {
			return stats.Set{}, err
		}
		obj = player
	}
	return stats.PlayerStats(obj)
}

// ResolveCategory returns the named category of the payload. With an empty
// name (and no configured default) the payload itself is the category.
func (s *Inspector) ResolveCategory(obj unstable.Object, name string) (stats.Category, error) {
	if name == "" {
		name = s.Config.DefaultCategory
	}
	if name == "" {
		return stats.NewCategory(obj.Raw()), nil
	}

	set, err := s.StatsOf(obj)
	if err != nil {
		return stats.Category{}, err
	}
	category, ok := set.Category(name)
	if !ok {
		return stats.Category{}, hyerr.ErrNotFound.Msg("stats category %q not found", name)
	}
	return category, nil
}

func (s *Inspector) Packages(ctx context.Context, path, category string) ([]string, error) {
	c, err := s.load(ctx, path, category)
	if err != nil {
		return nil, err
	}
	return c.Packages()
}

func (s *Inspector) HasPackage(ctx context.Context, path, category, name string) (bool, error) {
	c, err := s.load(ctx, path, category)
	if err != nil {
		return false, err
	}
	return c.HasPackage(name)
}

func (s *Inspector) Categories(ctx context.Context, path string) ([]string, error) {
	obj, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	set, err := s.StatsOf(obj)
	if err != nil {
		return nil, err
	}
	return set.Names(), nil
}

func (s *Inspector) load(ctx context.Context, path, category string) (stats.Category, error) {
	obj, err := s.Load(ctx, path)
	if err != nil {
		return stats.Category{}, err
	}
	return s.ResolveCategory(obj, category)
}
