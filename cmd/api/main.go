// @title Lost & Found Pets API
// @version 1.0
// @description Estado local de reportes de mascotas perdidas y encontradas: posts, mascotas, perfil, filtros, radio y ubicación.
// @BasePath /
package main

func main() {
	Execute()
}
