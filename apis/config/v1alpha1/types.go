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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupName is the API group of the optimization configuration types.
const GroupName = "optimization.catalano.io"

// SchemeGroupVersion is the group version used to register these objects.
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

const (
	SwarmArgsKind      = "SwarmArgs"
	TournamentArgsKind = "TournamentArgs"
	MultiplierArgsKind = "MultiplierArgs"
)

// SwarmArgs configures the particle swarm optimizer.
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type SwarmArgs struct {
	metav1.TypeMeta `json:",inline"`

	// SwarmSize is the number of particles.
	SwarmSize *int32 `json:"swarmSize,omitempty"`

	// Iterations is the fixed number of swarm updates. There is no early stop.
	Iterations *int32 `json:"iterations,omitempty"`

	// CognitiveFactor (C1) weighs the pull towards a particle's personal best.
	CognitiveFactor *float64 `json:"cognitiveFactor,omitempty"`

	// SocialFactor (C2) weighs the pull towards the swarm's global best.
	SocialFactor *float64 `json:"socialFactor,omitempty"`

	// Inertia configures the inertia weight and its decay schedule.
	Inertia InertiaArgs `json:"inertia,omitempty"`

	// Seed makes runs reproducible. Zero selects a random seed.
	Seed int64 `json:"seed,omitempty"`

	// SharedCoefficients uses one random draw per dimension for both the
	// cognitive and the social term instead of two independent draws.
	SharedCoefficients bool `json:"sharedCoefficients,omitempty"`

	// Bounds are the position constraints, one per dimension. They may be
	// left empty when the objective supplies its own.
	Bounds []BoundArgs `json:"bounds,omitempty"`

	// VelocityBounds are optional velocity constraints, one per dimension.
	// When empty they default to +-0.2*(max-min) of each position bound.
	VelocityBounds []BoundArgs `json:"velocityBounds,omitempty"`
}

// InertiaDecay names an inertia weight schedule.
// +kubebuilder:validation:Enum=Multiplicative;Linear;Fixed
type InertiaDecay string

const (
	// InertiaDecayMultiplicative multiplies the weight by Factor after each
	// sweep over the swarm.
	InertiaDecayMultiplicative InertiaDecay = "Multiplicative"

	// InertiaDecayLinear moves the weight linearly from Weight to Lower over
	// the iteration count.
	InertiaDecayLinear InertiaDecay = "Linear"

	// InertiaDecayFixed keeps the weight constant.
	InertiaDecayFixed InertiaDecay = "Fixed"
)

// InertiaArgs configures the inertia weight.
type InertiaArgs struct {
	Decay InertiaDecay `json:"decay,omitempty"`

	// Weight is the initial inertia weight, also the upper bound of the
	// linear schedule.
	Weight *float64 `json:"weight,omitempty"`

	// Factor is the multiplicative decay factor.
	Factor *float64 `json:"factor,omitempty"`

	// Lower is the final weight of the linear schedule.
	Lower *float64 `json:"lower,omitempty"`
}

// BoundArgs is an inclusive range.
type BoundArgs struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TournamentArgs configures tournament selection.
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type TournamentArgs struct {
	metav1.TypeMeta `json:",inline"`

	// TournamentSize is the number of contestants, at least 2.
	TournamentSize *int32 `json:"tournamentSize,omitempty"`
}

// MultiplierArgs configures the multiplier mutation.
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type MultiplierArgs struct {
	metav1.TypeMeta `json:",inline"`

	// Balancer is the probability of multiplying a gene rather than adding
	// an offset to it.
	Balancer *float64 `json:"balancer,omitempty"`
}
