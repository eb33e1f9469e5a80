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

// Package paths prepares paths to tk2000sim resources: the preferences file,
// screenshots, audio recordings and profiles.
//
// ResourcePath() prepends the appropriate config directory to the supplied
// sub-path and filename, creating the directory if required. For development
// builds this is the ".tk2000sim" directory in the current working directory.
// Builds with the release tag use the user's config directory, as reported by
// os.UserConfigDir(), so that on a Linux system a call like
//
//	pth, err := paths.ResourcePath("screenshots", "frame.png")
//
// returns
//
//	/home/user/.config/tk2000sim/screenshots/frame.png
package paths
