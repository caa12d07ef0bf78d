// Package processor contains the core business logic for non-interactive
// runs. It orchestrates word list generation, audio synthesis, and Anki
// deck export, and launches the GUI when no concept is given. This
// package serves as the main coordinator between all other components.
package processor
