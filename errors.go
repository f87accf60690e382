// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sabdkosh

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad indicates that a dataset could not be read or decoded.
	ErrLoad = errors.New("loading dataset")

	// ErrInvalidRecord indicates that a record is missing a required field.
	ErrInvalidRecord = fmt.Errorf("%w: invalid record", ErrLoad)
)
