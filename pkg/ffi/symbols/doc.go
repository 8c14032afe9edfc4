/*
Copyright (C) 2024 The CRIKit Authors.

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

// Package symbols provides prebuilt implementations for the C symbols of
// the library's foreign-function boundary.
//
// The C symbol set is divided in sub-packages so that library authors can
// import only the ones they need. Importing a sub-package automatically
// includes its prebuilt symbols in the shared library build. If one of the
// prebuilt symbols is imported it is not possible to re-define it
// manually, as this would lead to a linking failure due to multiple
// definitions of the same symbol.
//
// The mapping between the exported C symbols and their sub-package is:
//   - lasterr: last_error_length, last_error_message
//   - loginit: log_init, log_init_config
//
// There are no horizontal dependencies between the sub-packages. Each one
// only builds on the errslot, logging, and ptr packages, so manually
// implemented C symbols can be mixed with the prebuilt ones.
package symbols
