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

// This package exports the C functions last_error_length() and
// last_error_message(), which foreign callers use to retrieve the
// description of the most recent failure recorded on their thread.
//
// In almost all cases, your library should import this module. The *only*
// case where it should not is when the library exports its own
// last-error accessors manually.
package lasterr
