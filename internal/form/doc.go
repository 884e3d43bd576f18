// Package form holds the side panel's draft configuration and the commands
// that act on it.
//
// The draft is what the user is editing; the committed configuration is
// whatever the apply consumer last received. The two are never synchronised
// implicitly: Apply is the only path from draft to consumer, and it does not
// modify the draft.
//
// # Field Updates
//
// Edits are values of the sealed Update interface, one variant per field.
// Reduce applies an update to a configuration and returns a new one that
// differs only in the updated field:
//
//	next := form.Reduce(cfg, form.SetFontSize{Option: large})
//
// Controls that only know a catalog.Field use SetField, which builds the
// matching variant.
//
// # Controller
//
//	ctrl := form.NewController(catalog.Builtin(), func(cfg catalog.Configuration) {
//	    view.Commit(cfg)
//	})
//	ctrl.SetField(catalog.FieldFontColor, black)
//	ctrl.Apply() // consumer receives the draft
//	ctrl.Reset() // draft returns to the catalog default
//
// Option values are not re-validated here. Controls are built from the
// catalog and can only emit its options.
package form
