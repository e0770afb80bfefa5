/*
   Copyright 2026 The DIRPX Authors

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

package manifest

// SidedDataEntry is a modded-ecosystem data value with distinct client and
// server forms, referenced by Processor arguments through ${key}
// placeholders.
type SidedDataEntry struct {
	// Client is the value used on the client side.
	Client string `json:"client" yaml:"client"`

	// Server is the value used on the server side.
	Server string `json:"server" yaml:"server"`
}

// Processor is one post-download processing step of a modded version
// (deobfuscation, patching, jar splitting).
type Processor struct {
	// Sides restricts the processor to the listed sides ("client",
	// "server"); empty means both.
	Sides []string `json:"sides,omitempty" yaml:"sides,omitempty"`

	// Jar is the Maven coordinate of the jar executed for this step.
	Jar string `json:"jar" yaml:"jar"`

	// Classpath lists the Maven coordinates the jar needs on its
	// classpath.
	Classpath []string `json:"classpath" yaml:"classpath"`

	// Args are the arguments passed to the jar, with ${key} placeholders
	// resolved against the version's Data table.
	Args []string `json:"args" yaml:"args"`

	// Outputs maps output placeholders to the checksums expected after
	// the step ran.
	Outputs map[string]string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// RunsOn reports whether the processor applies to the given side. A
// processor without a Sides list applies everywhere.
func (p Processor) RunsOn(side string) bool {
	if len(p.Sides) == 0 {
		return true
	}
	for _, s := range p.Sides {
		if s == side {
			return true
		}
	}
	return false
}
