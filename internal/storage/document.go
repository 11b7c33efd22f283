package storage

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/friendex/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// DocumentVersion is written into every exported document.
const DocumentVersion = 1

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat accepts json, yaml (or yml) and ics.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatICS:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("format %q: %w", s, ErrUnsupportedFormat)
	}
}

// ContactRecord is the persisted shape of a contact and its event lists.
type ContactRecord struct {
	ID       string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name     *string        `json:"name" yaml:"name"`
	Birthday *string        `json:"birthday" yaml:"birthday"`
	Meetings []*EventRecord `json:"meetings" yaml:"meetings"`
	Dates    []*EventRecord `json:"dates" yaml:"dates"`
}

type Document struct {
	Version  int              `json:"version" yaml:"version"`
	Contacts []*ContactRecord `json:"contacts" yaml:"contacts"`
}

func (r ContactRecord) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ContactRecord{id=%q, name=%s, birthday=%s", r.ID, deref(r.Name), deref(r.Birthday))
	writeEventRecords(&b, "meetings", r.Meetings)
	writeEventRecords(&b, "dates", r.Dates)
	b.WriteString("}")
	return b.String()
}

func writeEventRecords(b *strings.Builder, label string, recs []*EventRecord) {
	fmt.Fprintf(b, ", %s=[", label)
	for i, rec := range recs {
		if i > 0 {
			b.WriteString(", ")
		}
		if rec == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(rec.String())
	}
	b.WriteString("]")
}

// EncodeContact flattens a contact into its record form.
func EncodeContact(c *domain.Contact) *ContactRecord {
	name := c.Name
	birthday := c.Birthday.String()
	return &ContactRecord{
		ID:       c.ID,
		Name:     &name,
		Birthday: &birthday,
		Meetings: encodeEvents(c.Meetings),
		Dates:    encodeEvents(c.SpecialDates),
	}
}

func encodeEvents(events []domain.Event) []*EventRecord {
	recs := make([]*EventRecord, 0, len(events))
	for _, e := range events {
		rec := EncodeEvent(e)
		recs = append(recs, &rec)
	}
	return recs
}

// Codec converts between documents and contacts, reporting every decode
// failure to its DiagnosticSink before returning it.
type Codec struct {
	sink DiagnosticSink
}

func NewCodec(sink DiagnosticSink) *Codec {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Codec{sink: sink}
}

// DecodeContact converts rec into a contact whose event lists are sorted as
// seen from now. Null list entries are skipped.
func (c *Codec) DecodeContact(rec *ContactRecord, now domain.Date) (*domain.Contact, error) {
	contact, err := decodeContact(rec, now)
	if err != nil {
		c.sink.Diagnose(fmt.Sprintf("Illegal values found in contact record: %v. Record: %s", err, rec))
		return nil, err
	}
	return contact, nil
}

func decodeContact(rec *ContactRecord, now domain.Date) (*domain.Contact, error) {
	if rec.Name == nil {
		return nil, fmt.Errorf("contact name: %w", ErrMissingField)
	}
	if rec.Birthday == nil {
		return nil, fmt.Errorf("contact birthday: %w", ErrMissingField)
	}
	birthday, err := domain.ParseDate(*rec.Birthday)
	if err != nil {
		return nil, fmt.Errorf("contact birthday: %w: %v", ErrMalformedField, err)
	}

	contact := &domain.Contact{ID: rec.ID, Name: strings.TrimSpace(*rec.Name), Birthday: birthday}
	if err := contact.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedField, err)
	}

	meetings, err := decodeEvents(rec.Meetings, birthday, "meeting")
	if err != nil {
		return nil, err
	}
	dates, err := decodeEvents(rec.Dates, birthday, "special date")
	if err != nil {
		return nil, err
	}

	// Stored lists may have been edited by hand, so always re-sort.
	contact.Meetings = domain.SortByEffectiveDate(meetings, now)
	contact.SpecialDates = domain.SortByEffectiveDate(dates, now)
	return contact, nil
}

func decodeEvents(recs []*EventRecord, birthday domain.Date, label string) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(recs))
	for i, rec := range recs {
		if rec == nil {
			continue
		}
		e, err := DecodeEvent(*rec)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", label, i+1, err)
		}
		if domain.SeedDate(e).Before(birthday) {
			return nil, fmt.Errorf("%s %d on %s: %w (%s)", label, i+1, domain.SeedDate(e), ErrEventBeforeBirthday, birthday)
		}
		events = append(events, e)
	}
	return events, nil
}

// EncodeDocument writes contacts in the given format.
func (c *Codec) EncodeDocument(w io.Writer, contacts []*domain.Contact, format Format, now domain.Date) error {
	if format == FormatICS {
		return WriteICS(w, contacts, now)
	}

	doc := Document{Version: DocumentVersion, Contacts: make([]*ContactRecord, 0, len(contacts))}
	for _, contact := range contacts {
		doc.Contacts = append(doc.Contacts, EncodeContact(contact))
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json document: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml document: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("encoding %q: %w", format, ErrUnsupportedFormat)
	}
}

// DecodeDocument reads a JSON or YAML document. The first bad record aborts
// the whole decode.
func (c *Codec) DecodeDocument(r io.Reader, format Format, now domain.Date) ([]*domain.Contact, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			c.sink.Diagnose(fmt.Sprintf("Unreadable json document: %v", err))
			return nil, fmt.Errorf("decoding json document: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			c.sink.Diagnose(fmt.Sprintf("Unreadable yaml document: %v", err))
			return nil, fmt.Errorf("decoding yaml document: %w", err)
		}
	default:
		return nil, fmt.Errorf("decoding %q: %w", format, ErrUnsupportedFormat)
	}

	contacts := make([]*domain.Contact, 0, len(doc.Contacts))
	for i, rec := range doc.Contacts {
		if rec == nil {
			continue
		}
		contact, err := c.DecodeContact(rec, now)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i+1, err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}
