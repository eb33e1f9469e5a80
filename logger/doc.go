// This file is part of tk2000sim.
//
// tk2000sim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tk2000sim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tk2000sim.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log repository for tk2000sim. Logging is for
// diagnostic messages (resets, file loading, mismatch reports) and not for the
// instruction trace itself, which has its own sink in the tracer package.
//
// Entries are kept in memory, up to a maximum number, and can be written to
// an io.Writer on request or echoed as they arrive. Adjacent identical
// entries are collapsed into a single entry with a repeat count.
//
// Every log call takes a Permission argument. If the Permission does not allow
// logging the entry is dropped. The Allow value can be used when logging is
// always wanted.
package logger
