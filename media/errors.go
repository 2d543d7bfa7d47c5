// Copyright 2025 Don Estate
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package media

import "errors"

var (
	// ErrEmptyAsset indicates the transport returned no bytes for an attachment.
	ErrEmptyAsset = errors.New("empty media asset")

	// ErrUnsupportedKind indicates an attachment kind the fetcher does not handle.
	ErrUnsupportedKind = errors.New("unsupported attachment kind")
)
