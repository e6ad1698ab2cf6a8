// Package resolve locates an external executable before it is delegated to.
//
// Resolution is an ordered list of strategies tried in sequence until one
// reports a hit. Two strategies ship by default:
//   - Lookup runs a PATH lookup utility (`which zarf`) and takes its output
//     as the executable path.
//   - Probe runs the executable itself (`zarf --version`) with all output
//     discarded and, on success, returns the bare name so the OS performs
//     its own PATH search at spawn time.
//
// Neither strategy is authoritative. A hit only means the spawn is worth
// attempting; the real spawn is what confirms the executable works.
package resolve
