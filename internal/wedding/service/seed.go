package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

// SeedFile is the YAML document accepted by SeedService. Every section is
// optional.
type SeedFile struct {
	Settings    *SeedSettings    `yaml:"settings"`
	MealOptions []SeedMealOption `yaml:"meal_options"`
	Questions   []SeedQuestion   `yaml:"questions"`
	Templates   []SeedTemplate   `yaml:"templates"`
}

type SeedSettings struct {
	Partner1Name   string  `yaml:"partner1_name"`
	Partner2Name   string  `yaml:"partner2_name"`
	WeddingDate    string  `yaml:"wedding_date"`
	WeddingTime    string  `yaml:"wedding_time"`
	VenueName      string  `yaml:"venue_name"`
	VenueAddress   string  `yaml:"venue_address"`
	DressCode      *string `yaml:"dress_code"`
	RSVPDeadline   *string `yaml:"rsvp_deadline"`
	RegistryURL    *string `yaml:"registry_url"`
	AdditionalInfo *string `yaml:"additional_info"`
}

type SeedMealOption struct {
	Course      domain.CourseType `yaml:"course"`
	Name        string            `yaml:"name"`
	Description *string           `yaml:"description"`
	Available   *bool             `yaml:"available"`
}

type SeedQuestion struct {
	Text         string              `yaml:"text"`
	Type         domain.QuestionType `yaml:"type"`
	Options      []string            `yaml:"options"`
	Required     bool                `yaml:"required"`
	DisplayOrder int                 `yaml:"display_order"`
}

type SeedTemplate struct {
	Name    string              `yaml:"name"`
	Type    domain.TemplateType `yaml:"type"`
	Subject string              `yaml:"subject"`
	HTML    string              `yaml:"html"`

	// HTMLFile is read relative to the seed file when HTML is empty.
	HTMLFile     string  `yaml:"html_file"`
	HeroImageURL *string `yaml:"hero_image_url"`
}

// SeedReport counts what a seed run changed.
type SeedReport struct {
	Created  int
	Updated  int
	Settings bool
}

// ParseSeed decodes a seed document, rejecting unknown keys.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f SeedFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &f, nil
}

// LoadSeedFile parses path and inlines any html_file references.
func LoadSeedFile(path string) (*SeedFile, error) {
	fh, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := ParseSeed(fh)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i := range f.Templates {
		t := &f.Templates[i]
		if t.HTML != "" || t.HTMLFile == "" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, filepath.Clean(t.HTMLFile)))
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", t.Name, err)
		}
		t.HTML = string(raw)
	}
	return f, nil
}

// SeedService loads catalog data, templates and settings. Entries are
// matched by name so running the same file twice changes nothing new.
type SeedService struct {
	Store store.Store
	Clock Clock
}

// Apply writes the whole file in one transaction.
func (s *SeedService) Apply(ctx context.Context, f *SeedFile) (SeedReport, error) {
	log := slogx.FromContext(ctx)
	now := s.Clock.Now()

	var rep SeedReport
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rep = SeedReport{}

		if f.Settings != nil {
			if err := seedSettings(ctx, tx, f.Settings, now); err != nil {
				return err
			}
			rep.Settings = true
		}
		for _, m := range f.MealOptions {
			created, err := seedMealOption(ctx, tx, m, now)
			if err != nil {
				return fmt.Errorf("meal option %q: %w", m.Name, err)
			}
			rep.count(created)
		}
		for _, q := range f.Questions {
			created, err := seedQuestion(ctx, tx, q, now)
			if err != nil {
				return fmt.Errorf("question %q: %w", q.Text, err)
			}
			rep.count(created)
		}
		for _, t := range f.Templates {
			created, err := seedTemplate(ctx, tx, t, now)
			if err != nil {
				return fmt.Errorf("template %q: %w", t.Name, err)
			}
			rep.count(created)
		}
		return nil
	})
	if err != nil {
		log.Error("seed failed", slog.Any("error", err))
		return SeedReport{}, err
	}

	log.Info("seed applied",
		slog.Int("created", rep.Created),
		slog.Int("updated", rep.Updated),
		slog.Bool("settings", rep.Settings),
	)
	return rep, nil
}

func (r *SeedReport) count(created bool) {
	if created {
		r.Created++
	} else {
		r.Updated++
	}
}

func seedSettings(ctx context.Context, tx store.Tx, in *SeedSettings, now time.Time) error {
	ws, err := domain.NewWeddingSettings(domain.WeddingSettings{
		Partner1Name:   in.Partner1Name,
		Partner2Name:   in.Partner2Name,
		WeddingDate:    in.WeddingDate,
		WeddingTime:    in.WeddingTime,
		VenueName:      in.VenueName,
		VenueAddress:   in.VenueAddress,
		DressCode:      in.DressCode,
		RSVPDeadline:   in.RSVPDeadline,
		RegistryURL:    in.RegistryURL,
		AdditionalInfo: in.AdditionalInfo,
	}, now)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return tx.Settings().Save(ctx, ws)
}

func seedMealOption(ctx context.Context, tx store.Tx, in SeedMealOption, now time.Time) (bool, error) {
	input := domain.MealOptionInput{
		CourseType:  in.Course,
		Name:        in.Name,
		Description: in.Description,
		IsAvailable: in.Available,
	}

	existing, err := tx.MealOptions().FindByCourseAndName(ctx, in.Course, domain.CleanText(in.Name))
	switch {
	case err == nil:
		if err := existing.Update(input, now); err != nil {
			return false, err
		}
		return false, tx.MealOptions().Update(ctx, existing)
	case !errors.Is(err, store.ErrNotFound):
		return false, err
	}

	m, err := domain.NewMealOption(input, now)
	if err != nil {
		return false, err
	}
	return true, tx.MealOptions().Create(ctx, m)
}

func seedQuestion(ctx context.Context, tx store.Tx, in SeedQuestion, now time.Time) (bool, error) {
	input := domain.CustomQuestionInput{
		QuestionText: in.Text,
		QuestionType: in.Type,
		Options:      in.Options,
		IsRequired:   in.Required,
		DisplayOrder: in.DisplayOrder,
	}

	existing, err := tx.Questions().FindByText(ctx, domain.CleanText(in.Text))
	switch {
	case err == nil:
		if err := existing.Update(input, now); err != nil {
			return false, err
		}
		return false, tx.Questions().Update(ctx, existing)
	case !errors.Is(err, store.ErrNotFound):
		return false, err
	}

	q, err := domain.NewCustomQuestion(input, now)
	if err != nil {
		return false, err
	}
	return true, tx.Questions().Create(ctx, q)
}

func seedTemplate(ctx context.Context, tx store.Tx, in SeedTemplate, now time.Time) (bool, error) {
	input := domain.EmailTemplateInput{
		Name:         in.Name,
		TemplateType: in.Type,
		Subject:      in.Subject,
		HTMLContent:  in.HTML,
		HeroImageURL: in.HeroImageURL,
	}

	existing, err := tx.EmailTemplates().FindByName(ctx, domain.CleanText(in.Name))
	switch {
	case err == nil:
		if err := existing.UpdateContent(input, now); err != nil {
			return false, err
		}
		return false, tx.EmailTemplates().Update(ctx, existing)
	case !errors.Is(err, store.ErrNotFound):
		return false, err
	}

	t, err := domain.NewEmailTemplate(input, now)
	if err != nil {
		return false, err
	}
	if err := tx.EmailTemplates().Create(ctx, t); err != nil {
		return false, err
	}
	return true, tx.EmailTemplates().DeactivateOthers(ctx, t.TemplateType, t.ID, now)
}
