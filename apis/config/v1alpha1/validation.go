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
	"math"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

var validDecays = []string{
	string(InertiaDecayMultiplicative),
	string(InertiaDecayLinear),
	string(InertiaDecayFixed),
}

// ValidateSwarmArgs validates defaulted SwarmArgs.
func ValidateSwarmArgs(path *field.Path, args *SwarmArgs) error {
	var allErrs field.ErrorList

	if args.SwarmSize == nil || *args.SwarmSize < 1 {
		allErrs = append(allErrs, field.Invalid(path.Child("swarmSize"), args.SwarmSize, "must be at least 1"))
	}
	if args.Iterations == nil || *args.Iterations < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("iterations"), args.Iterations, "must not be negative"))
	}
	allErrs = append(allErrs, validateFactor(path.Child("cognitiveFactor"), args.CognitiveFactor)...)
	allErrs = append(allErrs, validateFactor(path.Child("socialFactor"), args.SocialFactor)...)
	allErrs = append(allErrs, validateInertia(path.Child("inertia"), &args.Inertia)...)
	allErrs = append(allErrs, validateBounds(path.Child("bounds"), args.Bounds)...)

	vpath := path.Child("velocityBounds")
	if len(args.VelocityBounds) > 0 && len(args.Bounds) > 0 && len(args.VelocityBounds) != len(args.Bounds) {
		allErrs = append(allErrs, field.Invalid(vpath, len(args.VelocityBounds), "must have one entry per position bound"))
	}
	allErrs = append(allErrs, validateBounds(vpath, args.VelocityBounds)...)

	return allErrs.ToAggregate()
}

func validateFactor(path *field.Path, v *float64) field.ErrorList {
	if v == nil {
		return field.ErrorList{field.Required(path, "")}
	}
	if *v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return field.ErrorList{field.Invalid(path, *v, "must be a finite non-negative number")}
	}
	return nil
}

func validateInertia(path *field.Path, args *InertiaArgs) field.ErrorList {
	var allErrs field.ErrorList

	if args.Weight == nil {
		allErrs = append(allErrs, field.Required(path.Child("weight"), ""))
	} else if math.IsNaN(*args.Weight) || math.IsInf(*args.Weight, 0) {
		allErrs = append(allErrs, field.Invalid(path.Child("weight"), *args.Weight, "must be finite"))
	}

	switch args.Decay {
	case InertiaDecayMultiplicative:
		if args.Factor == nil {
			allErrs = append(allErrs, field.Required(path.Child("factor"), "required for Multiplicative decay"))
		} else if !(*args.Factor > 0 && *args.Factor <= 1) {
			allErrs = append(allErrs, field.Invalid(path.Child("factor"), *args.Factor, "must be in (0, 1]"))
		}
	case InertiaDecayLinear:
		if args.Lower == nil {
			allErrs = append(allErrs, field.Required(path.Child("lower"), "required for Linear decay"))
		} else if args.Weight != nil && !(*args.Lower <= *args.Weight) {
			allErrs = append(allErrs, field.Invalid(path.Child("lower"), *args.Lower, "must not exceed weight"))
		}
	case InertiaDecayFixed:
	default:
		allErrs = append(allErrs, field.NotSupported(path.Child("decay"), args.Decay, validDecays))
	}
	return allErrs
}

func validateBounds(path *field.Path, bounds []BoundArgs) field.ErrorList {
	var allErrs field.ErrorList
	for i, b := range bounds {
		p := path.Index(i)
		if math.IsNaN(b.Min) || math.IsNaN(b.Max) || math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) {
			allErrs = append(allErrs, field.Invalid(p, b, "min and max must be finite"))
			continue
		}
		if b.Min > b.Max {
			allErrs = append(allErrs, field.Invalid(p, b, "min must not exceed max"))
		}
	}
	return allErrs
}

// ValidateTournamentArgs validates defaulted TournamentArgs.
func ValidateTournamentArgs(path *field.Path, args *TournamentArgs) error {
	var allErrs field.ErrorList
	if args.TournamentSize == nil || *args.TournamentSize < 2 {
		allErrs = append(allErrs, field.Invalid(path.Child("tournamentSize"), args.TournamentSize, "must be at least 2"))
	}
	return allErrs.ToAggregate()
}

// ValidateMultiplierArgs validates defaulted MultiplierArgs.
func ValidateMultiplierArgs(path *field.Path, args *MultiplierArgs) error {
	var allErrs field.ErrorList
	if args.Balancer == nil || !(*args.Balancer >= 0 && *args.Balancer <= 1) {
		allErrs = append(allErrs, field.Invalid(path.Child("balancer"), args.Balancer, "must be in [0, 1]"))
	}
	return allErrs.ToAggregate()
}
