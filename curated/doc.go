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

// Package curated provides a small alternative to the error helpers in the
// fmt and errors packages. A curated error is created with Errorf() and
// remembers the formatting pattern it was created with. The pattern doubles
// as the identity of the error:
//
//	e := curated.Errorf("timer: %v", err)
//
//	if curated.Is(e, "timer: %v") {
//		...
//	}
//
// Patterns should be stored as named string constants near the code that
// creates the error. The Is() function matches the outermost pattern only;
// Has() searches the whole chain of curated values. IsAny() says whether an
// error originated from this package at all, which is useful for separating
// errors the emulation knows about from errors it does not.
//
// Messages are normalised on the way out. Error message chains are treated
// as parts separated by ": " and adjacent duplicate parts are removed, so
// wrapping an error in the same pattern at several levels does not produce
// a stuttering message.
package curated
