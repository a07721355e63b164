package gofac

import (
	"fmt"
	"reflect"
	"sync"
)

// ServiceDef service definition: registration metadata, cached parameter types and singleton instance
type ServiceDef struct {
	svcType    reflect.Type     // type the definition is bound to
	implType   reflect.Type     // constructor return type or instance type
	scope      LifetimeScope    // lifetime
	kind       RegistrationKind // single or collection member
	group      string           // optional registration group
	instance   reflect.Value    // singleton cache or pre-registered instance
	ctor       reflect.Value    // constructor (empty for instance registrations)
	ctorType   reflect.Type     // constructor type (empty for instance registrations)
	once       sync.Once        // singleton initialisation
	paramTypes []reflect.Type   // cached constructor parameter types
	paramOnce  sync.Once        // parameter types are parsed only once
	isInstance bool             // instance registration: use instance, never call ctor
	mu         sync.RWMutex     // guards instance for constructor-built singletons
}

// singleton returns the cached singleton instance, if one was built
func (d *ServiceDef) singleton() (reflect.Value, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.instance, d.instance.IsValid()
}

// PredicateContext is handed to a conditional registration's predicate at resolution time
type PredicateContext struct {
	ServiceType reflect.Type // requested service type
	Handled     bool         // a concrete or earlier conditional binding already satisfies the request
}

// ConditionalFactory returns a builder for svcType, or false when it cannot build one
type ConditionalFactory func(svcType reflect.Type) (func() any, bool)

// conditionalDef default binding consulted only when no concrete binding exists
type conditionalDef struct {
	predicate func(PredicateContext) bool
	factory   ConditionalFactory
	scope     LifetimeScope
	group     string
	mu        sync.Mutex
	cache     map[reflect.Type]reflect.Value // singleton instances per service type
}

// conditionalKey scoped cache key of a conditional binding
type conditionalKey struct {
	def     *conditionalDef
	svcType reflect.Type
}

// Registration read-only view of one binding, see Container.Registrations
type Registration struct {
	ServiceType reflect.Type // nil for conditional bindings
	ImplType    reflect.Type // nil for conditional bindings
	Lifetime    LifetimeScope
	Kind        RegistrationKind
	Group       string
}

// RegisterOption tweaks a single registration
type RegisterOption func(*registerOptions)

type registerOptions struct {
	group string
}

// WithGroup tags a registration so it can be told apart in Registrations
func WithGroup(name string) RegisterOption {
	return func(o *registerOptions) { o.group = name }
}

func applyOptions(opts []RegisterOption) registerOptions {
	var o registerOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Container DI container core: manages all services, safe for concurrent use
type Container struct {
	services      map[reflect.Type]*ServiceDef   // single bindings
	collections   map[reflect.Type][]*ServiceDef // ordered collections
	conditionals  []*conditionalDef              // default bindings, in registration order
	registrations []Registration                 // registration order for introspection
	mu            sync.RWMutex
}

// Scope Scoped instances are unique within one Scope and isolated between scopes
type Scope struct {
	root       *Container            // shares registrations with the root container
	scopedInst map[any]reflect.Value // *ServiceDef or conditionalKey -> instance
	mu         sync.RWMutex
}

// Resolver is implemented by Container and Scope
type Resolver interface {
	// ResolveType resolves a single binding of svcType
	ResolveType(svcType reflect.Type) (reflect.Value, error)
	// ResolveAllType resolves every binding of elemType into a []elemType value
	ResolveAllType(elemType reflect.Type) (reflect.Value, error)
}

// NewContainer creates an empty container
func NewContainer() *Container {
	return &Container{
		services:    make(map[reflect.Type]*ServiceDef),
		collections: make(map[reflect.Type][]*ServiceDef),
	}
}

// Global process-wide container for programs that wire a single container
var Global = NewContainer()

// Register registers a constructor under its return type
func (c *Container) Register(ctor any, scope LifetimeScope, opts ...RegisterOption) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	def, err := newCtorDef(ctor, nil, scope)
	if err != nil {
		return err
	}
	return c.addSingle(def, applyOptions(opts))
}

// RegisterAs registers a constructor under an interface, e.g. (*IService)(nil)
func (c *Container) RegisterAs(ctor any, interfaceType any, scope LifetimeScope, opts ...RegisterOption) error {
	svcType, err := targetTypeOf(interfaceType)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	def, err := newCtorDef(ctor, svcType, scope)
	if err != nil {
		return err
	}
	return c.addSingle(def, applyOptions(opts))
}

// RegisterType registers a constructor under an explicit service type.
// Generic callers use it with reflect.TypeOf((*I)(nil)).Elem().
func (c *Container) RegisterType(ctor any, svcType reflect.Type, scope LifetimeScope, opts ...RegisterOption) error {
	if svcType == nil {
		return ErrNilServiceType
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	def, err := newCtorDef(ctor, svcType, scope)
	if err != nil {
		return err
	}
	return c.addSingle(def, applyOptions(opts))
}

// AppendType appends a constructor to the ordered collection bound to svcType.
// A collection may hold several implementations of the same type.
func (c *Container) AppendType(ctor any, svcType reflect.Type, scope LifetimeScope, opts ...RegisterOption) error {
	if svcType == nil {
		return ErrNilServiceType
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	def, err := newCtorDef(ctor, svcType, scope)
	if err != nil {
		return err
	}
	o := applyOptions(opts)
	def.kind = KindCollection
	def.group = o.group
	c.collections[svcType] = append(c.collections[svcType], def)
	c.record(def)
	return nil
}

// RegisterInstance registers an already built instance under its own type.
// Transient is not supported: the instance exists, a new one cannot be returned each time.
func (c *Container) RegisterInstance(instance any, scope LifetimeScope, opts ...RegisterOption) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registerInstance(instance, nil, scope, applyOptions(opts))
}

// RegisterInstanceAs registers an already built instance under an interface type
func (c *Container) RegisterInstanceAs(instance any, interfaceType any, scope LifetimeScope, opts ...RegisterOption) error {
	svcType, err := targetTypeOf(interfaceType)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registerInstance(instance, svcType, scope, applyOptions(opts))
}

func (c *Container) registerInstance(instance any, svcType reflect.Type, scope LifetimeScope, o registerOptions) error {
	if scope == Transient {
		return ErrTransientInstance
	}
	if instance == nil {
		return ErrNilInstance
	}

	instVal := reflect.ValueOf(instance)
	implType := instVal.Type()
	if svcType == nil {
		svcType = implType
	} else if err := checkCompatible(implType, svcType); err != nil {
		return err
	}
	instVal, err := adaptTo(instVal, svcType)
	if err != nil {
		return err
	}

	return c.addSingle(&ServiceDef{
		svcType:    svcType,
		implType:   implType,
		scope:      scope,
		instance:   instVal,
		isInstance: true,
	}, o)
}

// Binding one constructor of a RegisterBatch call
type Binding struct {
	Ctor    any
	Service reflect.Type
	Append  bool // add to the collection of Service instead of the single binding
}

// RegisterBatch registers every binding or none: all constructors are checked and
// single bindings are checked for duplicates, against the container and within the
// batch, before anything is stored. The first failure is returned as Register would.
func (c *Container) RegisterBatch(bindings []Binding, scope LifetimeScope, opts ...RegisterOption) error {
	o := applyOptions(opts)
	c.mu.Lock()
	defer c.mu.Unlock()

	defs := make([]*ServiceDef, len(bindings))
	pending := make(map[reflect.Type]bool)
	for i, b := range bindings {
		if b.Service == nil {
			return ErrNilServiceType
		}
		def, err := newCtorDef(b.Ctor, b.Service, scope)
		if err != nil {
			return err
		}
		if !b.Append {
			if _, exists := c.services[b.Service]; exists || pending[b.Service] {
				return fmt.Errorf("%w, type: %s", ErrRegisterDuplicate, b.Service)
			}
			pending[b.Service] = true
		}
		defs[i] = def
	}

	for i, def := range defs {
		if bindings[i].Append {
			def.kind = KindCollection
			def.group = o.group
			c.collections[def.svcType] = append(c.collections[def.svcType], def)
			c.record(def)
			continue
		}
		// duplicates were ruled out above
		_ = c.addSingle(def, o)
	}
	return nil
}

// RegisterConditional adds a default binding evaluated at resolution time.
// It is consulted only for service types without a single binding; predicate decides
// whether it applies and factory builds the instance, honouring scope.
func (c *Container) RegisterConditional(predicate func(PredicateContext) bool, factory ConditionalFactory, scope LifetimeScope, opts ...RegisterOption) error {
	if predicate == nil || factory == nil {
		return ErrNilConditional
	}
	o := applyOptions(opts)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conditionals = append(c.conditionals, &conditionalDef{
		predicate: predicate,
		factory:   factory,
		scope:     scope,
		group:     o.group,
		cache:     make(map[reflect.Type]reflect.Value),
	})
	c.registrations = append(c.registrations, Registration{
		Lifetime: scope,
		Kind:     KindConditional,
		Group:    o.group,
	})
	return nil
}

// addSingle stores a single binding; caller holds the write lock
func (c *Container) addSingle(def *ServiceDef, o registerOptions) error {
	if _, exists := c.services[def.svcType]; exists {
		return fmt.Errorf("%w, type: %s", ErrRegisterDuplicate, def.svcType)
	}
	def.kind = KindSingle
	def.group = o.group
	c.services[def.svcType] = def
	c.record(def)
	return nil
}

func (c *Container) record(def *ServiceDef) {
	c.registrations = append(c.registrations, Registration{
		ServiceType: def.svcType,
		ImplType:    def.implType,
		Lifetime:    def.scope,
		Kind:        def.kind,
		Group:       def.group,
	})
}

// Registrations returns every binding in registration order
func (c *Container) Registrations() []Registration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Registration, len(c.registrations))
	copy(out, c.registrations)
	return out
}

// newCtorDef validates a constructor and builds its definition.
// svcType nil means the constructor's return type.
func newCtorDef(ctor any, svcType reflect.Type, scope LifetimeScope) (*ServiceDef, error) {
	if ctor == nil {
		return nil, ErrNotFunc
	}
	ctorVal := reflect.ValueOf(ctor)
	ctorType := ctorVal.Type()
	if ctorType.Kind() != reflect.Func {
		return nil, ErrNotFunc
	}

	// exactly one return value, of concrete type
	numOut := ctorType.NumOut()
	if numOut != 1 {
		return nil, fmt.Errorf("%w, got %d return values", ErrNoReturn, numOut)
	}
	implType := ctorType.Out(0)
	if implType.Kind() == reflect.Interface {
		return nil, fmt.Errorf("%w, returns interface: %s", ErrNotConcreteType, implType)
	}

	if svcType == nil {
		svcType = implType
	} else if err := checkCompatible(implType, svcType); err != nil {
		return nil, err
	}

	return &ServiceDef{
		svcType:  svcType,
		implType: implType,
		scope:    scope,
		ctor:     ctorVal,
		ctorType: ctorType,
	}, nil
}

// targetTypeOf parses (*IInterface)(nil) or (*Concrete)(nil) into the service type
func targetTypeOf(interfaceType any) (reflect.Type, error) {
	if interfaceType == nil {
		return nil, ErrInvalidInterfaceType
	}
	targetType := reflect.TypeOf(interfaceType)
	if targetType.Kind() != reflect.Ptr {
		return nil, ErrInvalidInterfaceType
	}
	elemType := targetType.Elem()
	if elemType.Kind() == reflect.Interface {
		return elemType, nil
	}
	// concrete: (*UserService)(nil) registers *UserService
	return targetType, nil
}

func checkCompatible(implType, svcType reflect.Type) error {
	if svcType.Kind() == reflect.Interface {
		if !implType.Implements(svcType) {
			return fmt.Errorf("%w: %s does not implement %s", ErrTypeConvertFailed, implType, svcType)
		}
		return nil
	}
	if !isTypeCompatible(implType, svcType) {
		return fmt.Errorf("%w: %s cannot be converted to %s", ErrTypeConvertFailed, implType, svcType)
	}
	return nil
}

// isTypeCompatible reports whether two types are compatible, including pointer/value conversion
func isTypeCompatible(implType, targetType reflect.Type) bool {
	if implType.AssignableTo(targetType) {
		return true
	}
	if implType.ConvertibleTo(targetType) {
		return true
	}
	// value implementation, pointer target
	if implType.Kind() != reflect.Ptr && reflect.PointerTo(implType).AssignableTo(targetType) {
		return true
	}
	// pointer implementation, value target
	if implType.Kind() == reflect.Ptr && implType.Elem().AssignableTo(targetType) {
		return true
	}
	return false
}

// adaptTo converts an instance to the service type it was registered under,
// following the pointer/value rules of isTypeCompatible
func adaptTo(inst reflect.Value, svcType reflect.Type) (reflect.Value, error) {
	it := inst.Type()
	switch {
	case it.AssignableTo(svcType):
		return inst, nil
	case it.Kind() != reflect.Ptr && reflect.PointerTo(it).AssignableTo(svcType):
		ptr := reflect.New(it)
		ptr.Elem().Set(inst)
		return ptr, nil
	case it.Kind() == reflect.Ptr && it.Elem().AssignableTo(svcType):
		if inst.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil %s cannot be dereferenced to %s", ErrCreateInstanceFailed, it, svcType)
		}
		return inst.Elem(), nil
	case it.ConvertibleTo(svcType):
		return inst.Convert(svcType), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %s cannot be converted to %s", ErrTypeConvertFailed, it, svcType)
}

// Resolve resolves into a pointer, e.g. var svc IService; c.Resolve(&svc)
func (c *Container) Resolve(out any) error {
	return resolveInto(c, out)
}

// ResolveAll resolves the single binding (if any) followed by the collection of the slice element type
func (c *Container) ResolveAll(out any) error {
	return resolveAllInto(c, out)
}

// ResolveType implements Resolver
func (c *Container) ResolveType(svcType reflect.Type) (reflect.Value, error) {
	return c.resolve(nil, svcType, make(map[*ServiceDef]bool))
}

// ResolveAllType implements Resolver
func (c *Container) ResolveAllType(elemType reflect.Type) (reflect.Value, error) {
	return c.resolveAll(nil, elemType, make(map[*ServiceDef]bool))
}

func resolveInto(r Resolver, out any) error {
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr || outVal.IsNil() {
		return ErrInvalidOutPtr
	}
	instance, err := r.ResolveType(outVal.Elem().Type())
	if err != nil {
		return err
	}
	outVal.Elem().Set(instance)
	return nil
}

func resolveAllInto(r Resolver, out any) error {
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr || outVal.IsNil() {
		return ErrInvalidOutPtr
	}
	sliceType := outVal.Elem().Type()
	if sliceType.Kind() != reflect.Slice {
		return fmt.Errorf("%w: ResolveAll needs a pointer to a slice, got %s", ErrInvalidOutPtr, sliceType)
	}
	results, err := r.ResolveAllType(sliceType.Elem())
	if err != nil {
		return err
	}
	outVal.Elem().Set(results)
	return nil
}

// resolve core recursive resolution shared by the root container (s == nil) and scopes
func (c *Container) resolve(s *Scope, svcType reflect.Type, track map[*ServiceDef]bool) (reflect.Value, error) {
	if svcType == nil {
		return reflect.Value{}, ErrNilServiceType
	}
	c.mu.RLock()
	serviceDef, exists := c.services[svcType]
	c.mu.RUnlock()
	if !exists {
		instance, handled, err := c.resolveConditional(s, svcType)
		if err != nil {
			return reflect.Value{}, err
		}
		if !handled {
			return reflect.Value{}, fmt.Errorf("%w, type: %s", ErrServiceNotRegistered, svcType)
		}
		return instance, nil
	}
	return c.instantiate(s, serviceDef, track)
}

// resolveAll builds []elemType from the single binding and the collection of elemType.
// Conditional bindings never contribute; an unknown type yields an empty slice.
func (c *Container) resolveAll(s *Scope, elemType reflect.Type, track map[*ServiceDef]bool) (reflect.Value, error) {
	if elemType == nil {
		return reflect.Value{}, ErrNilServiceType
	}
	c.mu.RLock()
	defs := make([]*ServiceDef, 0, len(c.collections[elemType])+1)
	if def, ok := c.services[elemType]; ok {
		defs = append(defs, def)
	}
	defs = append(defs, c.collections[elemType]...)
	c.mu.RUnlock()

	results := reflect.MakeSlice(reflect.SliceOf(elemType), 0, len(defs))
	for _, def := range defs {
		inst, err := c.instantiate(s, def, track)
		if err != nil {
			return reflect.Value{}, err
		}
		results = reflect.Append(results, inst)
	}
	return results, nil
}

// instantiate applies the lifetime rules of one definition
func (c *Container) instantiate(s *Scope, def *ServiceDef, track map[*ServiceDef]bool) (reflect.Value, error) {
	if track[def] {
		return reflect.Value{}, fmt.Errorf("%w, chain contains: %s", ErrResolveCircularDependency, def.svcType)
	}
	track[def] = true
	defer delete(track, def)

	// scoped services must go through a Scope
	if def.scope == Scoped && s == nil {
		return reflect.Value{}, ErrScopedOnRootContainer
	}

	if def.isInstance {
		return def.instance, nil
	}

	switch def.scope {
	case Singleton:
		if inst, ok := def.singleton(); ok {
			return inst, nil
		}
	case Scoped:
		if inst, ok := s.cached(def); ok {
			return inst, nil
		}
	}

	// singletons outlive every scope, so their dependencies come from the root:
	// a Scoped dependency fails with ErrScopedOnRootContainer instead of being captured
	paramScope := s
	if def.scope == Singleton {
		paramScope = nil
	}
	params, err := c.buildParams(paramScope, def, track)
	if err != nil {
		return reflect.Value{}, err
	}
	results := def.ctor.Call(params)
	if len(results) != 1 {
		return reflect.Value{}, fmt.Errorf("%w, unexpected constructor results", ErrCreateInstanceFailed)
	}
	instance, err := adaptTo(results[0], def.svcType)
	if err != nil {
		return reflect.Value{}, err
	}

	switch def.scope {
	case Singleton:
		// first build wins, concurrent losers return the cached instance
		def.once.Do(func() {
			def.mu.Lock()
			def.instance = instance
			def.mu.Unlock()
		})
		instance, _ = def.singleton()
	case Scoped:
		instance = s.store(def, instance)
	}
	return instance, nil
}

// buildParams resolves constructor parameters recursively
func (c *Container) buildParams(s *Scope, def *ServiceDef, track map[*ServiceDef]bool) ([]reflect.Value, error) {
	def.paramOnce.Do(func() {
		numIn := def.ctorType.NumIn()
		params := make([]reflect.Type, numIn)
		for i := 0; i < numIn; i++ {
			params[i] = def.ctorType.In(i)
		}
		def.paramTypes = params
	})

	params := make([]reflect.Value, len(def.paramTypes))
	for i, pType := range def.paramTypes {
		if pType.Kind() == reflect.Slice {
			c.mu.RLock()
			_, registered := c.services[pType]
			c.mu.RUnlock()
			if !registered {
				// unregistered slice: collect every binding of the element type
				all, err := c.resolveAll(s, pType.Elem(), track)
				if err != nil {
					return nil, fmt.Errorf("resolve dependency %s failed: %w", pType, err)
				}
				params[i] = all
				continue
			}
		}
		inst, err := c.resolve(s, pType, track)
		if err != nil {
			return nil, fmt.Errorf("resolve dependency %s failed: %w", pType, err)
		}
		params[i] = inst
	}
	return params, nil
}

// resolveConditional evaluates default bindings for a type without a single binding
func (c *Container) resolveConditional(s *Scope, svcType reflect.Type) (reflect.Value, bool, error) {
	c.mu.RLock()
	conds := make([]*conditionalDef, len(c.conditionals))
	copy(conds, c.conditionals)
	c.mu.RUnlock()

	pc := PredicateContext{ServiceType: svcType}
	var (
		matched *conditionalDef
		build   func() any
	)
	for _, cond := range conds {
		if !cond.predicate(pc) {
			continue
		}
		b, ok := cond.factory(svcType)
		if !ok {
			continue
		}
		if matched != nil {
			return reflect.Value{}, false, fmt.Errorf("%w, type: %s", ErrAmbiguousConditional, svcType)
		}
		matched, build = cond, b
		pc.Handled = true
	}
	if matched == nil {
		return reflect.Value{}, false, nil
	}

	if matched.scope == Scoped && s == nil {
		return reflect.Value{}, false, ErrScopedOnRootContainer
	}

	create := func() (reflect.Value, error) {
		inst := reflect.ValueOf(build())
		if !inst.IsValid() || !inst.Type().AssignableTo(svcType) {
			return reflect.Value{}, fmt.Errorf("%w: conditional binding for %s", ErrTypeConvertFailed, svcType)
		}
		return inst, nil
	}

	switch matched.scope {
	case Singleton:
		matched.mu.Lock()
		defer matched.mu.Unlock()
		if inst, ok := matched.cache[svcType]; ok {
			return inst, true, nil
		}
		inst, err := create()
		if err != nil {
			return reflect.Value{}, false, err
		}
		matched.cache[svcType] = inst
		return inst, true, nil
	case Scoped:
		key := conditionalKey{def: matched, svcType: svcType}
		if inst, ok := s.cached(key); ok {
			return inst, true, nil
		}
		inst, err := create()
		if err != nil {
			return reflect.Value{}, false, err
		}
		return s.store(key, inst), true, nil
	default:
		inst, err := create()
		return inst, err == nil, err
	}
}

// getTyped converts a resolved instance into T
func getTyped[T any](svcType reflect.Type, instance reflect.Value) (T, error) {
	var zero T
	it := instance.Type()
	if svcType.Kind() == reflect.Interface {
		if it.Implements(svcType) {
			return instance.Interface().(T), nil
		}
		// value type whose pointer implements the interface
		if it.Kind() != reflect.Ptr && reflect.PointerTo(it).Implements(svcType) {
			var iface any
			if instance.CanAddr() {
				iface = instance.Addr().Interface()
			} else {
				ptr := reflect.New(it)
				ptr.Elem().Set(instance)
				iface = ptr.Interface()
			}
			return iface.(T), nil
		}
		return zero, fmt.Errorf("%w: %s cannot be converted to interface %s", ErrTypeConvertFailed, it, svcType)
	}

	if it.AssignableTo(svcType) {
		return instance.Interface().(T), nil
	}
	if it.ConvertibleTo(svcType) {
		return instance.Convert(svcType).Interface().(T), nil
	}
	return zero, fmt.Errorf("%w: %s cannot be converted to %s", ErrTypeConvertFailed, it, svcType)
}

// Get generic resolution from a container or scope
func Get[T any](r Resolver) (T, error) {
	var zero T
	svcType := reflect.TypeOf((*T)(nil)).Elem()
	instance, err := r.ResolveType(svcType)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", svcType, err)
	}
	return getTyped[T](svcType, instance)
}

// MustGet like Get, panics on error
func MustGet[T any](r Resolver) T {
	inst, err := Get[T](r)
	if err != nil {
		panic(err)
	}
	return inst
}

// GetAll generic collection resolution; empty slice when nothing is bound
func GetAll[T any](r Resolver) ([]T, error) {
	elemType := reflect.TypeOf((*T)(nil)).Elem()
	all, err := r.ResolveAllType(elemType)
	if err != nil {
		return nil, fmt.Errorf("get all %s: %w", elemType, err)
	}
	return all.Interface().([]T), nil
}

// MustRegister like Register, panics on error
func (c *Container) MustRegister(ctor any, scope LifetimeScope, opts ...RegisterOption) {
	if err := c.Register(ctor, scope, opts...); err != nil {
		panic(fmt.Sprintf("[DI register failed] %v", err))
	}
}

// MustRegisterAs like RegisterAs, panics on error
func (c *Container) MustRegisterAs(ctor any, interfaceType any, scope LifetimeScope, opts ...RegisterOption) {
	if err := c.RegisterAs(ctor, interfaceType, scope, opts...); err != nil {
		panic(fmt.Sprintf("[DI interface register failed] %v", err))
	}
}

// MustRegisterInstance like RegisterInstance, panics on error
func (c *Container) MustRegisterInstance(instance any, scope LifetimeScope, opts ...RegisterOption) {
	if err := c.RegisterInstance(instance, scope, opts...); err != nil {
		panic(fmt.Sprintf("[DI instance register failed] %v", err))
	}
}

// MustRegisterInstanceAs like RegisterInstanceAs, panics on error
func (c *Container) MustRegisterInstanceAs(instance any, interfaceType any, scope LifetimeScope, opts ...RegisterOption) {
	if err := c.RegisterInstanceAs(instance, interfaceType, scope, opts...); err != nil {
		panic(fmt.Sprintf("[DI instance interface register failed] %v", err))
	}
}

// MustResolve like Resolve, panics on error
func (c *Container) MustResolve(out any) {
	if err := c.Resolve(out); err != nil {
		panic(fmt.Sprintf("[DI resolve failed] %v", err))
	}
}

// MustResolveAll like ResolveAll, panics on error
func (c *Container) MustResolveAll(out any) {
	if err := c.ResolveAll(out); err != nil {
		panic(fmt.Sprintf("[DI resolve all failed] %v", err))
	}
}

// NewScope creates a scope for Scoped services
func (c *Container) NewScope() *Scope {
	return &Scope{
		root:       c,
		scopedInst: make(map[any]reflect.Value),
	}
}

// Resolve scope resolution, same contract as Container.Resolve, supports Scoped
func (s *Scope) Resolve(out any) error {
	return resolveInto(s, out)
}

// ResolveAll scope counterpart of Container.ResolveAll
func (s *Scope) ResolveAll(out any) error {
	return resolveAllInto(s, out)
}

// ResolveType implements Resolver
func (s *Scope) ResolveType(svcType reflect.Type) (reflect.Value, error) {
	return s.root.resolve(s, svcType, make(map[*ServiceDef]bool))
}

// ResolveAllType implements Resolver
func (s *Scope) ResolveAllType(elemType reflect.Type) (reflect.Value, error) {
	return s.root.resolveAll(s, elemType, make(map[*ServiceDef]bool))
}

// MustResolve like Resolve, panics on error
func (s *Scope) MustResolve(out any) {
	if err := s.Resolve(out); err != nil {
		panic(fmt.Sprintf("[DI scope resolve failed] %v", err))
	}
}

func (s *Scope) cached(key any) (reflect.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inst, ok := s.scopedInst[key]
	return inst, ok && inst.IsValid()
}

// store caches inst unless another goroutine got there first, returns the cached value
func (s *Scope) store(key any, inst reflect.Value) reflect.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.scopedInst[key]; ok && existing.IsValid() {
		return existing
	}
	s.scopedInst[key] = inst
	return inst
}

// Reset clears all registrations and caches (tests)
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services = make(map[reflect.Type]*ServiceDef)
	c.collections = make(map[reflect.Type][]*ServiceDef)
	c.conditionals = nil
	c.registrations = nil
}

// Reset clears the scope's instance cache
func (s *Scope) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scopedInst = make(map[any]reflect.Value)
}

// MustRegister registers into Global, see Container.MustRegister
func MustRegister(ctor any, scope LifetimeScope, opts ...RegisterOption) {
	Global.MustRegister(ctor, scope, opts...)
}

func MustRegisterAs(ctor any, iface any, scope LifetimeScope, opts ...RegisterOption) {
	Global.MustRegisterAs(ctor, iface, scope, opts...)
}

func MustRegisterInstance(instance any, scope LifetimeScope, opts ...RegisterOption) {
	Global.MustRegisterInstance(instance, scope, opts...)
}

func MustRegisterInstanceAs(instance any, iface any, scope LifetimeScope, opts ...RegisterOption) {
	Global.MustRegisterInstanceAs(instance, iface, scope, opts...)
}

// MustResolve resolves from Global
func MustResolve(out any) { Global.MustResolve(out) }

// GlobalNewScope creates a scope of Global
func GlobalNewScope() *Scope { return Global.NewScope() }

// GlobalReset clears Global (tests)
func GlobalReset() { Global.Reset() }
