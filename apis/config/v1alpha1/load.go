/*
Copyright 2024 The Catalano Authors.

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

package v1alpha1

import (
	"fmt"
	"os"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"
)

// DecodeSwarmArgs strictly decodes YAML or JSON, applies defaults and
// validates the result.
func DecodeSwarmArgs(data []byte) (*SwarmArgs, error) {
	args := &SwarmArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", SwarmArgsKind, err)
	}
	if err := checkTypeMeta(args.APIVersion, args.Kind, SwarmArgsKind); err != nil {
		return nil, err
	}
	SetDefaults_SwarmArgs(args)
	if err := ValidateSwarmArgs(field.NewPath(SwarmArgsKind), args); err != nil {
		return nil, err
	}
	return args, nil
}

// LoadSwarmArgs reads and decodes the file at path.
func LoadSwarmArgs(path string) (*SwarmArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeSwarmArgs(data)
}

func checkTypeMeta(apiVersion, kind, want string) error {
	if apiVersion != "" && apiVersion != SchemeGroupVersion.String() {
		return fmt.Errorf("unsupported apiVersion %q, want %q", apiVersion, SchemeGroupVersion.String())
	}
	if kind != "" && kind != want {
		return fmt.Errorf("unexpected kind %q, want %q", kind, want)
	}
	return nil
}
