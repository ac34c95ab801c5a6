package vindecode

// Package vindecode implements the VIN decoder port against two public
// vehicle databases: db.vin (keyless) and the NHTSA vPIC API. Results merge
// best effort; a source being down never fails the decode.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/sync/errgroup"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
	"github.com/fixhire/fixhire-api/internal/ports"
)

const (
	defaultDBVINURL = "https://db.vin/api/v1/vin"
	defaultNHTSAURL = "https://vpic.nhtsa.dot.gov/api/vehicles"

	sourceOK          = "ok"
	sourceUnavailable = "unavailable"
)

// Decoder resolves VINs against external databases.
type Decoder struct {
	httpClient *http.Client
	dbvinURL   string
	nhtsaURL   string
}

// Option customizes a Decoder.
type Option func(*Decoder)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(d *Decoder) { d.httpClient = c }
}

// WithEndpoints overrides the db.vin and NHTSA base URLs. Empty values keep
// the defaults.
func WithEndpoints(dbvinURL, nhtsaURL string) Option {
	return func(d *Decoder) {
		if dbvinURL != "" {
			d.dbvinURL = strings.TrimRight(dbvinURL, "/")
		}
		if nhtsaURL != "" {
			d.nhtsaURL = strings.TrimRight(nhtsaURL, "/")
		}
	}
}

// NewDecoder creates a Decoder against the public endpoints.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		dbvinURL:   defaultDBVINURL,
		nhtsaURL:   defaultNHTSAURL,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// search evaluates a JMESPath expression against decoded JSON and returns
// the result as a trimmed string capped at limit runes.
func search(doc any, expr string, limit int) string {
	val, err := jmespath.Search(expr, doc)
	if err != nil || val == nil {
		return ""
	}
	switch v := val.(type) {
	case string:
		return sanitize.CleanText(v, limit)
	case float64:
		return sanitize.CleanText(strings.TrimSuffix(fmt.Sprintf("%v", v), ".0"), limit)
	default:
		return ""
	}
}

func (d *Decoder) fetchJSON(ctx context.Context, rawURL string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return doc, nil
}

// Decode resolves a VIN. The caller validates VIN format; here the VIN is
// only escaped. Fields db.vin answered win; NHTSA fills the gaps, except
// engine where the vPIC data is usually richer.
func (d *Decoder) Decode(ctx context.Context, vin string) (ports.VINFacts, error) {
	facts := ports.VINFacts{
		VIN:     vin,
		Sources: map[string]string{"db.vin": sourceUnavailable, "nhtsa": sourceUnavailable},
	}

	var dbvinDoc, nhtsaDoc any
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := d.fetchJSON(gctx, d.dbvinURL+"/"+url.PathEscape(vin))
		if err == nil {
			dbvinDoc = doc
		}
		return nil
	})
	g.Go(func() error {
		doc, err := d.fetchJSON(gctx, d.nhtsaURL+"/DecodeVinValues/"+url.PathEscape(vin)+"?format=json")
		if err == nil {
			nhtsaDoc = doc
		}
		return nil
	})
	_ = g.Wait()

	if dbvinDoc != nil {
		facts.Sources["db.vin"] = sourceOK
	}
	if nhtsaDoc != nil {
		facts.Sources["nhtsa"] = sourceOK
	}

	if dbvinDoc != nil {
		facts.Year = search(dbvinDoc, "data.year || year", 10)
		facts.Make = search(dbvinDoc, "data.make || make", 80)
		facts.Model = search(dbvinDoc, "data.model || model", 120)
		facts.Engine = search(dbvinDoc, "data.engine || engine", 120)
		facts.Transmission = search(dbvinDoc, "data.transmission || transmission", 40)
	}

	if nhtsaDoc != nil {
		if facts.Year == "" {
			facts.Year = search(nhtsaDoc, "Results[0].ModelYear", 10)
		}
		if facts.Make == "" {
			facts.Make = search(nhtsaDoc, "Results[0].Make", 80)
		}
		if facts.Model == "" {
			facts.Model = search(nhtsaDoc, "Results[0].Model", 120)
		}
		engineModel := search(nhtsaDoc, "Results[0].EngineModel", 120)
		displacement := search(nhtsaDoc, "Results[0].DisplacementL", 10)
		if engine := strings.TrimSpace(strings.Join(nonEmpty(engineModel, displacement), " ")); engine != "" {
			facts.Engine = sanitize.CleanText(engine, 120)
		}
		if facts.Transmission == "" {
			facts.Transmission = search(nhtsaDoc, "Results[0].TransmissionStyle || Results[0].TransmissionSpeeds", 40)
		}
		facts.Trim = search(nhtsaDoc, "Results[0].Trim", 80)
		facts.BodyClass = search(nhtsaDoc, "Results[0].BodyClass", 80)
	}

	return facts, nil
}

func nonEmpty(vals ...string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
