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

import "k8s.io/utils/ptr"

const (
	DefaultSwarmSize       int32   = 64
	DefaultIterations      int32   = 100
	DefaultCognitiveFactor float64 = 1.5
	DefaultSocialFactor    float64 = 1.5
	DefaultInertiaWeight   float64 = 0.9
	DefaultInertiaFactor   float64 = 0.99
	DefaultInertiaLower    float64 = 0.4
	DefaultTournamentSize  int32   = 5
	DefaultBalancer        float64 = 0.5
)

func setTypeMeta(apiVersion, kind *string, k string) {
	if *apiVersion == "" {
		*apiVersion = SchemeGroupVersion.String()
	}
	if *kind == "" {
		*kind = k
	}
}

// SetDefaults_SwarmArgs fills unset fields of obj.
func SetDefaults_SwarmArgs(obj *SwarmArgs) {
	setTypeMeta(&obj.APIVersion, &obj.Kind, SwarmArgsKind)
	if obj.SwarmSize == nil {
		obj.SwarmSize = ptr.To(DefaultSwarmSize)
	}
	if obj.Iterations == nil {
		obj.Iterations = ptr.To(DefaultIterations)
	}
	if obj.CognitiveFactor == nil {
		obj.CognitiveFactor = ptr.To(DefaultCognitiveFactor)
	}
	if obj.SocialFactor == nil {
		obj.SocialFactor = ptr.To(DefaultSocialFactor)
	}
	if obj.Inertia.Decay == "" {
		obj.Inertia.Decay = InertiaDecayMultiplicative
	}
	if obj.Inertia.Weight == nil {
		obj.Inertia.Weight = ptr.To(DefaultInertiaWeight)
	}
	if obj.Inertia.Factor == nil && obj.Inertia.Decay == InertiaDecayMultiplicative {
		obj.Inertia.Factor = ptr.To(DefaultInertiaFactor)
	}
	if obj.Inertia.Lower == nil && obj.Inertia.Decay == InertiaDecayLinear {
		obj.Inertia.Lower = ptr.To(DefaultInertiaLower)
	}
}

// SetDefaults_TournamentArgs fills unset fields of obj.
func SetDefaults_TournamentArgs(obj *TournamentArgs) {
	setTypeMeta(&obj.APIVersion, &obj.Kind, TournamentArgsKind)
	if obj.TournamentSize == nil {
		obj.TournamentSize = ptr.To(DefaultTournamentSize)
	}
}

// SetDefaults_MultiplierArgs fills unset fields of obj.
func SetDefaults_MultiplierArgs(obj *MultiplierArgs) {
	setTypeMeta(&obj.APIVersion, &obj.Kind, MultiplierArgsKind)
	if obj.Balancer == nil {
		obj.Balancer = ptr.To(DefaultBalancer)
	}
}
