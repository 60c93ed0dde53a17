// Package catalog holds the read-only service and KPI tiles shown on the
// dashboard. The data is static and embedded at build time.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Money is a dollar amount written as "$123.45".
type Money struct {
	decimal.Decimal
}

func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	raw := strings.TrimPrefix(strings.TrimSpace(node.Value), "$")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid amount %q: %w", node.Line, node.Value, err)
	}
	m.Decimal = d
	return nil
}

func (m Money) String() string {
	return "$" + m.StringFixed(2)
}

// ServiceMetrics are pre-formatted traffic figures for one service.
type ServiceMetrics struct {
	Requests string `yaml:"requests" validate:"required"`
	Latency  string `yaml:"latency" validate:"required"`
	Errors   string `yaml:"errors" validate:"required"`
}

// Service is one cloud-service health tile.
type Service struct {
	Name        string         `yaml:"name" validate:"required"`
	Status      string         `yaml:"status" validate:"oneof=healthy warning error"`
	Usage       int            `yaml:"usage" validate:"min=0,max=100"`
	Cost        Money          `yaml:"cost"`
	Description string         `yaml:"description"`
	Icon        string         `yaml:"icon"`
	Metrics     ServiceMetrics `yaml:"metrics"`
}

// Metric is one performance KPI tile.
type Metric struct {
	Title       string `yaml:"title" validate:"required"`
	Value       string `yaml:"value" validate:"required"`
	Change      string `yaml:"change"`
	Trend       string `yaml:"trend" validate:"oneof=up down"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
	Target      string `yaml:"target"`
	Status      string `yaml:"status" validate:"oneof=excellent good warning"`
}

// Overview is the agent summary card.
type Overview struct {
	ActiveAgents   int    `yaml:"active_agents" validate:"min=0"`
	TasksCompleted int    `yaml:"tasks_completed" validate:"min=0"`
	AvgResponse    string `yaml:"avg_response"`
	SuccessRate    string `yaml:"success_rate"`
}

// Indicator is a compact service health dot in the sidebar.
type Indicator struct {
	Name   string `yaml:"name" validate:"required"`
	Status string `yaml:"status" validate:"oneof=healthy warning error"`
}

type Catalog struct {
	Overview Overview    `yaml:"overview"`
	Sidebar  []Indicator `yaml:"sidebar" validate:"dive"`
	Services []Service   `yaml:"services" validate:"required,dive"`
	Metrics  []Metric    `yaml:"metrics" validate:"required,dive"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Load decodes and validates a catalog document.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return &c, nil
}

// TotalCost sums the cost of every service.
func (c *Catalog) TotalCost() Money {
	total := decimal.Zero
	for _, s := range c.Services {
		total = total.Add(s.Cost.Decimal)
	}
	return Money{total}
}

// HealthyCount returns how many services report healthy.
func (c *Catalog) HealthyCount() int {
	n := 0
	for _, s := range c.Services {
		if s.Status == "healthy" {
			n++
		}
	}
	return n
}

// AverageUsage returns the mean service usage rounded to a whole percent.
func (c *Catalog) AverageUsage() int {
	if len(c.Services) == 0 {
		return 0
	}
	sum := 0
	for _, s := range c.Services {
		sum += s.Usage
	}
	return int(decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(c.Services)))).
		Round(0).IntPart())
}
