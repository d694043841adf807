// Package errors provides the structured error type used across skilltree-api.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// Meta. Codes map one-to-one onto gRPC status codes so handlers can return
// them unchanged through ToGRPCError.
//
// Creating errors:
//
//	err := errors.NotFoundf("skill %s not found", id).WithMeta("skill_id", id)
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save build")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // fall back to an empty build
//	}
//
// Component configs validate their dependencies with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
//
// Layer guidelines:
//   - Repositories return NotFound for missing builds and wrap driver errors.
//   - Orchestrators validate input (InvalidArgument, NotFound for unknown skills)
//     and never surface persistence failures on mutations.
//   - Handlers convert with ToGRPCError.
package errors
