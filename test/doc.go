// This file is part of ts7200.
//
// ts7200 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ts7200 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ts7200.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions that remove common boilerplate
// from the package tests in this repository.
//
// The Expect group of functions (ExpectEquality, ExpectSuccess,
// ExpectFailure) mark the test as failed but allow it to continue. The
// Demand group are the same tests but end the test immediately. Demand is
// appropriate when subsequent test steps are meaningless on failure, for
// example when the demanded value is used to index something.
//
// For the success/failure functions, the meaning of success depends on the
// type of the value being tested: a bool succeeds when true and an error
// succeeds when nil. The nil interface value is treated as a success, which
// is the only sensible interpretation given how Go errors work.
//
// All functions accept optional trailing tag values which are printed with
// any failure message. Useful for identifying the failing iteration of a
// table driven test.
package test
