/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

/*
Package errors defines the error taxonomy of a lazy namespace.

Sentinels identify the class of a failure and are matched with the standard
errors.Is; typed errors carry the details and are extracted with errors.As:

	v, err := ns.Get("TopKLogitsWarper")
	switch {
	case errors.IsUnknownSymbol(err):
	    // programming error at the call site, never retried
	case errors.IsExportConsistency(err):
	    // packaging defect: declared but not bound after import
	case errors.IsBackendImport(err):
	    // the backend is installed but failed to load; a later call may retry
	}

The absence of an optional backend is not an error. Its symbols are simply
not exported.
*/
package errors
