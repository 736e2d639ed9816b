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

package generation

// ConfigurationUtils is the configuration_utils submodule handle.
// Each exported field is one binding; adding a field without declaring it
// (or the reverse) fails verification.
type ConfigurationUtils struct {
	GenerationConfig *Export
	GenerationMode   *Export
}

func loadConfigurationUtils() (any, error) {
	const sub = "configuration_utils"
	return &ConfigurationUtils{
		GenerationConfig: &Export{Name: "GenerationConfig", Submodule: sub, Kind: KindType},
		GenerationMode:   &Export{Name: "GenerationMode", Submodule: sub, Kind: KindType},
	}, nil
}
