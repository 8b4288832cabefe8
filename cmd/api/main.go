// @title                       Inventario Tiendas API
// @version                     1.0
// @description                 Inventario multi-tienda: productos, entradas, salidas, devoluciones y productos defectuosos con stock calculado.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>"
package main

import "github.com/jhoicas/Inventario-tiendas/cmd/api/commands"

func main() {
	commands.Execute()
}
