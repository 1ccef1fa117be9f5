// Package errors provides the structured error type shared by the terrain
// service layers.
//
// Errors carry a Code, a user facing Message, an optional Cause and
// free-form Meta. The HTTP boundary turns a Code into a status with
// Code.HTTPStatus; the gRPC health surface uses Code.GRPCCode and
// FromGRPCError.
//
// # Basic Usage
//
//	err := errors.InvalidArgumentf("unknown noise kind %q", kind)
//
//	if _, err := enc.Encode(img); err != nil {
//	    return errors.Wrap(err, "failed to encode terrain image")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("octaves", input.Octaves, 1, 16, vb)
//	errors.ValidateFinite("sea_level", input.SeaLevel, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Core packages (noise, terrain, imaging) return plain Go errors or
// InvalidArgument for bad configuration.
//
// Orchestrators validate inputs, wrap collaborator errors with context and
// map context cancellation through FromContext.
//
// Handlers translate to transport status codes and log internal errors.
package errors
