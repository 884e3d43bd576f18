package form

import (
	"go.uber.org/zap"

	"github.com/muurk/readerstyle/internal/catalog"
	"github.com/muurk/readerstyle/internal/logging"
	"github.com/muurk/readerstyle/internal/observe"
)

// ApplyFunc receives the draft when the user applies it.
type ApplyFunc func(cfg catalog.Configuration)

// Controller owns the draft configuration.
type Controller struct {
	catalog   *catalog.Catalog
	draft     catalog.Configuration
	onApply   ApplyFunc
	observers observe.List[catalog.Configuration]
}

// NewController creates a controller whose draft starts at the catalog
// default. onApply may be nil.
func NewController(cat *catalog.Catalog, onApply ApplyFunc) *Controller {
	return &Controller{
		catalog: cat,
		draft:   cat.Default(),
		onApply: onApply,
	}
}

// Catalog returns the catalog the controller resets from.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() catalog.Configuration {
	return c.draft
}

// Dispatch applies a field update to the draft.
func (c *Controller) Dispatch(u Update) {
	c.draft = Reduce(c.draft, u)
	logging.Debug("Draft field updated",
		zap.Stringer("field", u.Field()),
		zap.String("value", c.draft.Get(u.Field()).Value),
	)
	c.observers.Notify(c.draft)
}

// SetField replaces one field of the draft.
func (c *Controller) SetField(field catalog.Field, opt catalog.Option) {
	c.Dispatch(UpdateFor(field, opt))
}

// Reset replaces the whole draft with the catalog default.
func (c *Controller) Reset() {
	c.draft = c.catalog.Default()
	logging.Debug("Draft reset to defaults")
	c.observers.Notify(c.draft)
}

// Apply hands a snapshot of the draft to the apply consumer. Neither the
// draft nor anything else owned by the controller changes.
func (c *Controller) Apply() {
	snapshot := c.draft
	logging.LogApply(snapshot.Values())
	if c.onApply != nil {
		c.onApply(snapshot)
	}
}

// Subscribe registers fn to receive the draft after every change.
func (c *Controller) Subscribe(fn func(catalog.Configuration)) *observe.Subscription {
	return c.observers.Subscribe(fn)
}
