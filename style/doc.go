// Package style loads JSON style files and translates them into the
// validated descriptors the compositor consumes.
//
// Style files are a loose, forward-compatible format: unknown keys are
// ignored, missing parameters take documented defaults, and malformed
// cosmetic values (colors, opacities) degrade instead of failing. Only
// structurally broken input (unreadable file, invalid JSON) is an error.
package style
