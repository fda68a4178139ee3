package base

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/caffeine-storm/buildinged/logging"
)

// Many things have the following format
//   type Foo struct {
//     Defname string
//     *FooDef
//     FooInst
//   }
// Such that a Foo is something for which there can be multiple instances (such
// as a wall style, or a couch), FooDef is the data that is constant between
// all such instances, and FooInst is the data that makes each instance unique
// (location, orientation, ...).
//
// With things in this format it is convenient to have a registry structured
// like this:
//   foo_registry map[string]*FooDef
// so that a Foo can be made from a FooDef just by supplying the name of the
// FooDef. Given all of this the following functions are very common to all
// registries:
//
// GetAllFooNames() - Returns all keys in the foo_registry, in sorted order
//
// LoadAllFoosInDir(path string) - Finds every Foo that can be loaded in the
// specified directory and loads it into the registry.
//
// MakeFoo(name string) - Makes a Foo by finding the FooDef in the registry and
// embedding it in a Foo.
//
// Tags:
// `registry:"autoload"` - If an object is tagged with this and it has a
// method named Load() that takes zero inputs and zero outputs then its Load
// method will be called after all of its data has been loaded.
//
// `registry:"loadfrom-foo"` - The tagged pointer is filled in from registry
// "foo" using its Defname.

var (
	registry_registry map[string]reflect.Value
)

func init() {
	registry_registry = make(map[string]reflect.Value)
}

func RemoveRegistry(name string) {
	delete(registry_registry, name)
}

func HasRegistry(name string) bool {
	_, ok := registry_registry[name]
	return ok
}

// Registers a registry which must be a map from string to
// pointer-to-something.
func RegisterRegistry(name string, registry interface{}) {
	if strings.Contains(name, " ") {
		logging.Error("Registry name cannot contain spaces", "name", name)
	}
	mr := reflect.ValueOf(registry)
	if mr.Kind() != reflect.Map {
		panic(fmt.Errorf("registries must be map[string]*struct, got %v", mr.Kind()))
	}
	if mr.Type().Key().Kind() != reflect.String {
		panic(fmt.Errorf("registry %q must use strings as keys, got %v", name, mr.Type().Key()))
	}
	if mr.Type().Elem().Kind() != reflect.Pointer {
		panic(fmt.Errorf("registry %q must use pointers as values, got %v", name, mr.Type().Elem()))
	}
	if field, ok := mr.Type().Elem().Elem().FieldByName("Name"); !ok || field.Type.Kind() != reflect.String {
		panic(fmt.Errorf("registry %q must store values that have a Name field of type string", name))
	}
	if _, ok := registry_registry[name]; ok {
		logging.Warn("Replacing registry", "name", name)
	}
	registry_registry[name] = mr
}

// Registers object in the named registry which must have already been
// registered through RegisterRegistry(). object must be a pointer of the type
// appropriate for the named registry.
func RegisterObject(registry_name string, object interface{}) error {
	reg, ok := registry_registry[registry_name]
	if !ok {
		return fmt.Errorf("unknown registry %q", registry_name)
	}

	obj_val := reflect.ValueOf(object)
	if obj_val.Kind() != reflect.Pointer {
		return fmt.Errorf("can only register pointers, got %v", obj_val.Kind())
	}
	if obj_val.Elem().Type() != reg.Type().Elem().Elem() {
		return fmt.Errorf("registry %q holds %v, got %v", registry_name, reg.Type().Elem().Elem(), obj_val.Elem().Type())
	}

	// At this point we know we have the right type, and since registries can
	// only exist that store values with a field called Name of type string we
	// don't need to check for validity, we can assume it.
	object_name := obj_val.Elem().FieldByName("Name").String()
	cur_val := reg.MapIndex(reflect.ValueOf(object_name))
	if cur_val.IsValid() {
		return fmt.Errorf("name collision on %q in registry %q", object_name, registry_name)
	}
	reg.SetMapIndex(reflect.ValueOf(object_name), obj_val)
	return nil
}

// Loads an object using the specified registry. object should have a field
// called Defname of type string. This name will be used to find the def in the
// registry. The object should also embed a field of this type which the value
// in the registry will be assigned to.
func GetObject(registry_name string, object interface{}) error {
	reg, ok := registry_registry[registry_name]
	if !ok {
		return fmt.Errorf("load from an unknown registry %q", registry_name)
	}

	object_val := reflect.ValueOf(object)
	if object_val.Kind() != reflect.Pointer {
		return fmt.Errorf("tried to load into a value that was not a pointer: %v", object_val.Kind())
	}

	object_name := object_val.Elem().FieldByName("Defname")
	if !object_name.IsValid() || object_name.Kind() != reflect.String {
		return fmt.Errorf("%v is missing a Defname field", object_val.Elem().Type())
	}

	cur_val := reg.MapIndex(object_name)
	if !cur_val.IsValid() {
		return fmt.Errorf("no object named %q in registry %q", object_name.String(), registry_name)
	}
	fieldName := cur_val.Elem().Type().Name()
	field := object_val.Elem().FieldByName(fieldName)
	if !field.IsValid() {
		return fmt.Errorf("%v has no embedded %v", object_val.Elem().Type(), cur_val.Type())
	}
	if !field.CanSet() {
		panic(fmt.Errorf("can't set value through field named %q", fieldName))
	}
	field.Set(cur_val)
	return nil
}

// Returns a sorted list of all names in the specified registry.
func GetAllNamesInRegistry(registry_name string) []string {
	reg, ok := registry_registry[registry_name]
	if !ok {
		logging.Error("Unknown registry", "registry_name", registry_name)
		return nil
	}
	keys := reg.MapKeys()
	var names []string
	for _, key := range keys {
		names = append(names, key.String())
	}
	sort.Strings(names)
	return names
}

// Processes an object as it is normally processed when registered through
// RegisterAllObjectsInDir(). Does NOT register the object in any registry.
func LoadAndProcessObject(path string, target interface{}) error {
	logging.Debug("LoadAndProcessObject", "path", path)
	err := LoadJson(path, target)
	if err != nil {
		return err
	}

	return ProcessObject(reflect.ValueOf(target), "")
}

// Recursively decends through a value's type hierarchy and applies processing
// according to any tags that have been set on those types.
func ProcessObject(val reflect.Value, tag string) error {
	switch val.Type().Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			break
		}
		loadfrom_tag := "loadfrom-"
		if strings.HasPrefix(tag, loadfrom_tag) {
			source := tag[len(loadfrom_tag):]
			logging.Trace("ProcessObject calling GetObject", "registry", source)
			if err := GetObject(source, val.Interface()); err != nil {
				return err
			}
		}
		if err := ProcessObject(val.Elem(), tag); err != nil {
			return err
		}
	case reflect.Struct:
		for i := 0; i < val.NumField(); i++ {
			if !val.Type().Field(i).IsExported() {
				continue
			}
			if err := ProcessObject(val.Field(i), val.Type().Field(i).Tag.Get("registry")); err != nil {
				return err
			}
		}

	case reflect.Array, reflect.Slice:
		for i := 0; i < val.Len(); i++ {
			if err := ProcessObject(val.Index(i), tag); err != nil {
				return err
			}
		}
	}

	// Anything that is tagged with autoload has its Load() method called if it
	// exists and has zero inputs and outputs.
	if tag == "autoload" {
		load := val.MethodByName("Load")
		if !load.IsValid() && val.CanAddr() {
			load = val.Addr().MethodByName("Load")
		}
		if load.IsValid() && load.Type().NumIn() == 0 && load.Type().NumOut() == 0 {
			load.Call(nil)
		}
	}
	return nil
}

// Walks recursively through the specified directory and loads all files with
// the specified suffix into the specified registry using RegisterObject().
// Files begining with '.' are ignored in this process. Files that fail to load
// are logged and skipped; the number of such files is returned.
func RegisterAllObjectsInDir(registry_name, dir, suffix string) (int, error) {
	logging.Info("Registering directory", "dir", dir)
	reg, ok := registry_registry[registry_name]
	if !ok {
		return 0, fmt.Errorf("tried to load objects into an unknown registry %q", registry_name)
	}
	failures := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("error walking directory %q: %w", dir, err)
		}
		_, filename := filepath.Split(path)
		if strings.HasPrefix(filename, ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), suffix) {
			return nil
		}
		target := reflect.New(reg.Type().Elem().Elem())
		err = LoadAndProcessObject(path, target.Interface())
		if err == nil {
			err = RegisterObject(registry_name, target.Interface())
		}
		if err != nil {
			logging.Error("Error loading file", "path", path, "err", err)
			failures++
		}
		return nil
	})
	logging.Info("Completed directory", "dir", dir, "failures", failures)
	return failures, err
}
