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

package loginit

/*
#include <stdint.h>

typedef enum LogLevel {
	log_level_off,
	log_level_error,
	log_level_warn,
	log_level_info,
	log_level_debug,
	log_level_trace,
} LogLevel;
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/crikit/ffi-sdk-go/pkg/errslot"
	"github.com/crikit/ffi-sdk-go/pkg/logging"
	"github.com/crikit/ffi-sdk-go/pkg/ptr"
)

//export log_init
func log_init(level C.LogLevel) {
	if err := logging.Init(logging.Level(level)); err != nil {
		errslot.Update(fmt.Errorf("init log level: %w", err))
	}
}

//export log_init_config
func log_init_config(config *C.char) {
	if err := logging.InitConfig(ptr.GoString(unsafe.Pointer(config))); err != nil {
		errslot.Update(fmt.Errorf("init log config: %w", err))
	}
}
