// Package simulation runs scripted sessions against an assembly.
//
// A Scenario, usually loaded from YAML, declares members and laws by key and
// lists steps (support, suggest, survey, withdraw). Runner registers the
// declarations on a fresh assembly, executes the steps, publishes events and
// metrics, and returns a Report of per-step outcomes and final tallies.
package simulation
